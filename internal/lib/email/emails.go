package email

// SendResultDeliveredEmail notifies a patient that a lab result has been
// delivered and is ready for review.
func (c *Client) SendResultDeliveredEmail(to, pacienteNombre, tipoAnalisis, laboratorio, fechaEntrega string) error {
	data := map[string]string{
		"PacienteNombre": pacienteNombre,
		"TipoAnalisis":   tipoAnalisis,
		"Laboratorio":    laboratorio,
		"FechaEntrega":   fechaEntrega,
	}

	return c.SendEmail(
		to,
		"Tu resultado de laboratorio está disponible",
		TemplateResultDelivered,
		data,
	)
}
