package auth

// ValidateAccessToken reports whether token has a plausible length for a
// Mojang/Microsoft access token. It is not a format or signature check,
// just a guard against obviously-wrong input reaching the session server.
func ValidateAccessToken(token string) bool {
	return len(token) > 10 && len(token) < 2048
}
