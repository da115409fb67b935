package quotation

// Validate reports ErrMissingFields when a client field is empty or there
// are no line items. Whitespace-only fields are accepted as given; amounts
// are not range checked.
func Validate(in Input) error {
	if in.ClientName == "" || in.ClientAddress == "" || in.ClientContact == "" {
		return ErrMissingFields
	}
	if len(in.Items) == 0 {
		return ErrMissingFields
	}
	return nil
}
