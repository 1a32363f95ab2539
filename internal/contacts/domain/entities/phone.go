package entities

// PhoneLength - количество цифр в номере телефона.
const PhoneLength = 10

// Phone - номер телефона из ровно 10 ASCII цифр.
type Phone struct {
	value string
}

// NewPhone проверяет номер и возвращает Phone.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != PhoneLength {
		return Phone{}, newValidationError("phone", raw, "must consist of exactly 10 digits")
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return Phone{}, newValidationError("phone", raw, "must consist of exactly 10 digits")
		}
	}
	return Phone{value: raw}, nil
}

func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }
