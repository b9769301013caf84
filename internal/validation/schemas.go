package validation

// Схемы ресурсов. Create-схемы требуют все обязательные поля,
// update-схемы принимают любое подмножество своих полей.

var UserCreate = Schema{
	Resource: "user",
	Fields: []Field{
		{Name: "name", Kind: KindString, Required: true, Rule: "min=1,max=100"},
		{Name: "password", Kind: KindString, Required: true, Rule: "min=1,max=72"},
	},
}

var UserUpdate = Schema{
	Resource: "user",
	Fields: []Field{
		{Name: "name", Kind: KindString, Rule: "min=1,max=100"},
		{Name: "password", Kind: KindString, Rule: "min=1,max=72"},
	},
}

var AdvertisementCreate = Schema{
	Resource: "advertisement",
	Fields: []Field{
		{Name: "title", Kind: KindString, Required: true, Rule: "min=1,max=100"},
		{Name: "description", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "owner", Kind: KindInteger, Required: true, Rule: "min=1"},
	},
}

// Владелец объявления после создания не меняется.
var AdvertisementUpdate = Schema{
	Resource: "advertisement",
	Fields: []Field{
		{Name: "title", Kind: KindString, Rule: "min=1,max=100"},
		{Name: "description", Kind: KindString, Rule: "min=1"},
	},
}
