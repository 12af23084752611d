package response

// PaymentIntentResponse exposes only the client-facing secret; the intent
// id and amount stay server-side.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
