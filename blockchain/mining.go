package blockchain

// DifficultyEntry is one difficulty adjustment.
type DifficultyEntry struct {
	Time       uint64  `json:"time"`
	Height     uint64  `json:"height"`
	Difficulty float64 `json:"difficulty"`
	Adjustment float64 `json:"adjustment"`
}

// HashrateEntry is one network hashrate sample.
type HashrateEntry struct {
	Timestamp   uint64  `json:"timestamp"`
	AvgHashrate float64 `json:"avgHashrate"`
}

// Hashrate combines the current difficulty epoch with hashrate and difficulty history.
type Hashrate struct {
	ProgressPercent       float64           `json:"progressPercent"`
	DifficultyChange      float64           `json:"difficultyChange"`
	EstimatedRetargetDate uint64            `json:"estimatedRetargetDate"`
	RemainingBlocks       uint64            `json:"remainingBlocks"`
	RemainingTime         uint64            `json:"remainingTime"`
	PreviousRetarget      float64           `json:"previousRetarget"`
	PreviousTime          uint64            `json:"previousTime"`
	NextRetargetHeight    uint64            `json:"nextRetargetHeight"`
	TimeAvg               float64           `json:"timeAvg"`
	AdjustedTimeAvg       float64           `json:"adjustedTimeAvg"`
	TimeOffset            float64           `json:"timeOffset"`
	ExpectedBlocks        float64           `json:"expectedBlocks"`
	Hashrates             []HashrateEntry   `json:"hashrates"`
	Difficulty            []DifficultyEntry `json:"difficulty"`
	CurrentHashrate       float64           `json:"currentHashrate"`
	CurrentDifficulty     float64           `json:"currentDifficulty"`
}
