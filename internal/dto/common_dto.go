package dto

// Envelope is the uniform response shape every mutating endpoint returns.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StatsResponse struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalGames       int64 `json:"totalGames"`
	TotalAccounts    int64 `json:"totalAccounts"`
	TotalKeys        int64 `json:"totalKeys"`
	SpecialGames     int64 `json:"specialGames"`
	TotalSuggestions int64 `json:"totalSuggestions"`
	TotalAdmins      int64 `json:"totalAdmins"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
