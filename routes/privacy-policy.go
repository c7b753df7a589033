package routes

import (
	"fmt"
	"net/http"
)

// PrivacyPolicyHandler serves the Privacy Policy content
func PrivacyPolicyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")

	html := `
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title>WhisperChat Privacy Policy</title>
	</head>
	<body>
		<h1>Privacy Policy</h1>
		<p>WhisperChat serves demo conversations, reels and posts. Nothing you send is stored beyond the running server process.</p>
		<p>Last seen and read receipts can be hidden from the settings panel at any time.</p>
	</body>
	</html>
	`
	fmt.Fprint(w, html)
}
