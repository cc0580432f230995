package credmail

// MissingFieldsMessage is returned to clients whose request lacks any required field.
const MissingFieldsMessage = "Missing required fields: to, name, username, password"

// Request describes a newly issued credential that must be emailed to its owner.
type Request struct {
	To       string `json:"to"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate reports ErrMissingFields when any field is empty.
func (r Request) Validate() error {
	if r.To == "" || r.Name == "" || r.Username == "" || r.Password == "" {
		return ErrMissingFields
	}
	return nil
}
