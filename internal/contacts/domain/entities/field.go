package entities

// Field - проверенное скалярное значение контакта.
// Значение прошло валидацию при создании и дальше не меняется.
type Field interface {
	Value() string
	String() string
}

var (
	_ Field = Phone{}
	_ Field = Birthday{}
)
