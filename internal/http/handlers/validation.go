package handlers

// validCredentials reports whether the pair is usable at all. Only
// empty values are rejected; no further shape rules (length, charset)
// are imposed, so existing clients keep working.
func validCredentials(c CredentialsRequest) bool {
	return c.Username != "" && c.Password != ""
}
