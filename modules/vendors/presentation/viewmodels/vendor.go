package viewmodels

type Vendor struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	SuspensionReason string `json:"suspensionReason,omitempty"`
	Commission       string `json:"commission"`
	AllowPostpaid    bool   `json:"allowPostpaid"`
	AllowPrepaid     bool   `json:"allowPrepaid"`
	HasAPIKey        bool   `json:"hasApiKey"`
	APIKeyIssuedAt   string `json:"apiKeyIssuedAt,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type Wallet struct {
	VendorID  uint   `json:"vendorId"`
	Balance   string `json:"balance"`
	Currency  string `json:"currency"`
	UpdatedAt string `json:"updatedAt"`
}

type WalletEntry struct {
	ID        uint   `json:"id"`
	VendorID  uint   `json:"vendorId"`
	Amount    string `json:"amount"`
	Reference string `json:"reference"`
	CreatedAt string `json:"createdAt"`
}

// APIKeyReveal carries the plaintext key exactly once, at rotation time.
type APIKeyReveal struct {
	APIKey string `json:"apiKey"`
	Vendor Vendor `json:"vendor"`
}
