package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Демонстрационный клиент доски объявлений: прогоняет типовой сценарий
// против локально запущенного сервера.

const baseURL = "http://127.0.0.1:8080"

func call(client *http.Client, method, path, body string) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		log.Fatalf("не удалось собрать запрос: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("запрос %s %s не прошёл: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s -> %d\n%s\n", method, path, resp.StatusCode, data)
}

func main() {
	client := &http.Client{}

	// добавляем нового пользователя
	call(client, http.MethodPost, "/user", `{"name": "Kevin", "password": "secret12345"}`)

	// повторное имя - ждём конфликт
	call(client, http.MethodPost, "/user", `{"name": "Kevin", "password": "another1"}`)

	// получаем пользователя по его id
	call(client, http.MethodGet, "/user/1", "")

	// меняем данные о пользователе
	call(client, http.MethodPatch, "/user/1", `{"name": "Kevin_Junior"}`)

	// добавляем новое объявление
	call(client, http.MethodPost, "/advertisement",
		`{"title": "Продам машину", "description": "Не бита, не крашена!", "owner": 1}`)

	// получаем информацию об объявлении
	call(client, http.MethodGet, "/advertisement/1", "")

	// меняем данные в объявлении
	call(client, http.MethodPatch, "/advertisement/1", `{"description": "Недорого!"}`)

	// удаляем объявление, затем пользователя
	call(client, http.MethodDelete, "/advertisement/1", "")
	call(client, http.MethodDelete, "/user/1", "")
}
