package entities

// RecordData - сериализуемое представление Record для хранилищ.
type RecordData struct {
	Name     string   `json:"name" yaml:"name" cbor:"name"`
	Phones   []string `json:"phones,omitempty" yaml:"phones,omitempty" cbor:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty" cbor:"birthday,omitempty"`
}

// Data возвращает снимок записи.
func (r *Record) Data() RecordData {
	d := RecordData{Name: r.name}
	for _, p := range r.phones {
		d.Phones = append(d.Phones, p.value)
	}
	if r.birthday != nil {
		d.Birthday = r.birthday.String()
	}
	return d
}

// RecordFromData восстанавливает запись, заново проверяя каждое поле.
func RecordFromData(d RecordData) (*Record, error) {
	r, err := NewRecord(d.Name)
	if err != nil {
		return nil, err
	}
	for _, raw := range d.Phones {
		if err := r.AddPhone(raw); err != nil {
			return nil, err
		}
	}
	if d.Birthday != "" {
		if err := r.SetBirthday(d.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// BookData возвращает снимки всех записей книги в порядке добавления.
func BookData(b *AddressBook) []RecordData {
	records := b.Records()
	out := make([]RecordData, 0, len(records))
	for _, r := range records {
		out = append(out, r.Data())
	}
	return out
}

// BookFromData собирает книгу из снимков.
func BookFromData(data []RecordData) (*AddressBook, error) {
	b := NewAddressBook()
	for _, d := range data {
		r, err := RecordFromData(d)
		if err != nil {
			return nil, err
		}
		b.Upsert(r)
	}
	return b, nil
}
