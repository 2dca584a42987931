package viewmodels

type Bill struct {
	ID             uint   `json:"id"`
	CustomerID     uint   `json:"customerId"`
	AccountNumber  string `json:"accountNumber"`
	CustomerName   string `json:"customerName"`
	TariffClass    string `json:"tariffClass"`
	BillingPeriod  string `json:"billingPeriod"`
	MeterNumber    string `json:"meterNumber"`
	PreviousRead   string `json:"previousRead"`
	CurrentRead    string `json:"currentRead"`
	ConsumptionKWh string `json:"consumptionKwh"`
	AmountDue      string `json:"amountDue"`
	AmountPaid     string `json:"amountPaid"`
	Outstanding    string `json:"outstanding"`
	Status         string `json:"status"`
	StatusBadge    string `json:"statusBadge"`
	HasDispute     bool   `json:"hasDispute"`
	IssuedAt       string `json:"issuedAt"`
	DueAt          string `json:"dueAt"`
}

type Payment struct {
	ID            uint   `json:"id"`
	CustomerID    uint   `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	CustomerName  string `json:"customerName"`
	Amount        string `json:"amount"`
	Channel       string `json:"channel"`
	Status        string `json:"status"`
	StatusBadge   string `json:"statusBadge"`
	Reference     string `json:"reference"`
	PaidAt        string `json:"paidAt"`
}

type DebtBucket struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type DebtItem struct {
	ID            uint         `json:"id"`
	CustomerID    uint         `json:"customerId"`
	AccountNumber string       `json:"accountNumber"`
	CustomerName  string       `json:"customerName"`
	Stage         string       `json:"stage"`
	StageBadge    string       `json:"stageBadge"`
	Buckets       []DebtBucket `json:"buckets"`
	Outstanding   string       `json:"outstanding"`
	LastPaymentAt string       `json:"lastPaymentAt,omitempty"`
}

type DebtAllocation struct {
	Bucket    string `json:"bucket"`
	Due       string `json:"due"`
	Allocated string `json:"allocated"`
}

type AllocationPreview struct {
	Item        DebtItem         `json:"item"`
	Amount      string           `json:"amount"`
	Allocations []DebtAllocation `json:"allocations"`
	Remainder   string           `json:"remainder"`
}

type ChangeRequest struct {
	ID            uint   `json:"id"`
	CustomerID    uint   `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	StatusBadge   string `json:"statusBadge"`
	Summary       string `json:"summary"`
	RaisedBy      string `json:"raisedBy"`
	CreatedAt     string `json:"createdAt"`
	ResolvedAt    string `json:"resolvedAt,omitempty"`
}

type QualityIssue struct {
	ID            uint   `json:"id"`
	Category      string `json:"category"`
	Severity      string `json:"severity"`
	SeverityBadge string `json:"severityBadge"`
	Status        string `json:"status"`
	EntityKind    string `json:"entityKind"`
	EntityID      uint   `json:"entityId"`
	Detail        string `json:"detail"`
	DetectedAt    string `json:"detectedAt"`
}
