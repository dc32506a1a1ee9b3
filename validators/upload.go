package validators

// UploadFieldsValidator checks the caller-supplied metadata of an upload.
// All three fields are mandatory. Returns nil when everything is present,
// otherwise a field-by-field report naming exactly what is missing
func UploadFieldsValidator(subject, title, fileType string) map[string]string {
	details := make(map[string]string)

	if subject == "" {
		details["subject"] = "Subject is required"
	}
	if title == "" {
		details["title"] = "Title is required"
	}
	if fileType == "" {
		details["fileType"] = "File type is required"
	}

	if len(details) == 0 {
		return nil
	}

	return details
}
