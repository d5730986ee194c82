package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateResultDelivered corresponds to templates/emails/result_delivered.html
	TemplateResultDelivered Template = "result_delivered"
)
