package email

import "fmt"

// PreviewData contains sample template data for local preview/testing.
//
// It maps templateName -> (templateVariableName -> exampleValue).
var PreviewData = map[string]map[string]string{
	"result_delivered": {
		"PacienteNombre": "María González",
		"TipoAnalisis":   "Hemograma completo",
		"Laboratorio":    "LabX",
		"FechaEntrega":   "2026-08-28",
	},
}

// Preview renders templateName with its sample data. Used by the dev-only
// preview endpoint so template edits can be checked in a browser without
// sending anything.
func Preview(templateName Template) (string, error) {
	data, ok := PreviewData[string(templateName)]
	if !ok {
		return "", fmt.Errorf("no preview data for template %s", templateName)
	}
	return Render(templateName, data)
}
