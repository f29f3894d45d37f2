package console

// Form holds the fields of one submitted command.
type Form struct {
	values     map[string]string
	submitting bool
}

func NewForm(values map[string]string) *Form {
	if values == nil {
		values = make(map[string]string)
	}
	return &Form{values: values}
}

func (f *Form) Value(field string) string {
	return f.values[field]
}

func (f *Form) SetSubmitting(submitting bool) {
	f.submitting = submitting
}

// Submitting reports whether the submit control is disabled.
func (f *Form) Submitting() bool {
	return f.submitting
}

func (f *Form) Reset() {
	for k := range f.values {
		f.values[k] = ""
	}
}
