package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Circle:
		o.printCircle(v)
	case []Circle:
		o.printCircleList(v)
	case CircleMembers:
		o.printCircleMembers(v)
	case CircleEarnings:
		o.printCircleEarnings(v)
	case []CircleEarnings:
		o.printTopCircles(v)
	case HarvestResult:
		o.printHarvestResult(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case PlayerEarnings:
		o.printPlayerEarnings(v)
	case []ScoreboardEntry:
		o.printScoreboard(v)
	case TotalStats:
		o.printTotalStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Circle response type (matches API)
type Circle struct {
	CircleID        uint32  `json:"circle_id"`
	Name            string  `json:"name"`
	Creator         string  `json:"creator"`
	MemberCount     uint32  `json:"member_count"`
	Betrayed        bool    `json:"betrayed"`
	TotalKaleEarned int64   `json:"total_kale_earned"`
	Betrayer        *string `json:"betrayer,omitempty"`
}

// CircleMembers response type
type CircleMembers struct {
	Members []string `json:"members"`
}

// CircleEarnings response type
type CircleEarnings struct {
	CircleID          uint32 `json:"circle_id"`
	TotalEarned       int64  `json:"total_earned"`
	TotalHarvests     uint32 `json:"total_harvests"`
	LastHarvestAmount int64  `json:"last_harvest_amount"`
}

// HarvestResult response type
type HarvestResult struct {
	TotalDistributed  int64  `json:"total_distributed"`
	SuccessfulCircles uint32 `json:"successful_circles"`
	FailedHarvests    uint32 `json:"failed_harvests"`
}

// PlayerStats response type
type PlayerStats struct {
	Wallet          string `json:"wallet"`
	CirclesCreated  uint32 `json:"circles_created"`
	CirclesJoined   uint32 `json:"circles_joined"`
	CirclesBetrayed uint32 `json:"circles_betrayed"`
	TimesBetrayed   uint32 `json:"times_betrayed"`
	TotalKaleEarned int64  `json:"total_kale_earned"`
}

// PlayerEarnings response type
type PlayerEarnings struct {
	Wallet            string `json:"wallet"`
	TotalKaleEarned   int64  `json:"total_kale_earned"`
	FromOwnCircles    int64  `json:"kale_earned_from_own_circles"`
	FromJoinedCircles int64  `json:"kale_earned_from_join_circles"`
	FromBetrayals     int64  `json:"kale_earned_from_betrayals"`
}

// ScoreboardEntry response type
type ScoreboardEntry struct {
	Wallet          string `json:"wallet"`
	CirclesCreated  uint32 `json:"circles_created"`
	CirclesJoined   uint32 `json:"circles_joined"`
	CirclesBetrayed uint32 `json:"circles_betrayed"`
	TimesBetrayed   uint32 `json:"times_betrayed"`
	TrustScore      int64  `json:"trust_score"`
	BetrayalRatio   uint32 `json:"betrayal_ratio"`
	TotalKaleEarned int64  `json:"total_kale_earned"`
	KalePerCircle   int64  `json:"kale_per_circle"`
}

// TotalStats response type
type TotalStats struct {
	TotalPlayers        uint32 `json:"total_players"`
	TotalCirclesCreated uint32 `json:"total_circles_created"`
	TotalCirclesJoined  uint32 `json:"total_circles_joined"`
	TotalBetrayals      uint32 `json:"total_betrayals"`
	TotalKaleEarned     int64  `json:"total_kale_earned"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCircle(c Circle) {
	fmt.Printf("Circle: %s (#%d)\n", c.Name, c.CircleID)
	fmt.Printf("Creator: %s\n", c.Creator)
	fmt.Printf("Members: %d\n", c.MemberCount)
	fmt.Printf("Total Kale Earned: %d\n", c.TotalKaleEarned)
	if c.Betrayed {
		fmt.Println("Status: BETRAYED")
	} else {
		fmt.Println("Status: intact")
	}
}

func (o *Output) printCircleList(circles []Circle) {
	fmt.Printf("Circles (%d):\n", len(circles))
	for _, c := range circles {
		status := "intact"
		if c.Betrayed {
			status = "BETRAYED"
		}
		fmt.Printf("  #%d %s - %d members, %d kale, %s\n",
			c.CircleID, c.Name, c.MemberCount, c.TotalKaleEarned, status)
	}
}

func (o *Output) printCircleMembers(m CircleMembers) {
	fmt.Printf("Members (%d):\n", len(m.Members))
	for _, w := range m.Members {
		fmt.Printf("  - %s\n", w)
	}
}

func (o *Output) printCircleEarnings(e CircleEarnings) {
	fmt.Printf("Circle #%d earnings:\n", e.CircleID)
	fmt.Printf("  Total Earned: %d\n", e.TotalEarned)
	fmt.Printf("  Harvests: %d\n", e.TotalHarvests)
	fmt.Printf("  Last Harvest: %d\n", e.LastHarvestAmount)
}

func (o *Output) printTopCircles(circles []CircleEarnings) {
	fmt.Printf("Top earning circles (%d):\n", len(circles))
	for i, c := range circles {
		fmt.Printf("  %d. circle #%d - %d kale over %d harvests\n",
			i+1, c.CircleID, c.TotalEarned, c.TotalHarvests)
	}
}

func (o *Output) printHarvestResult(r HarvestResult) {
	fmt.Printf("Distributed: %d\n", r.TotalDistributed)
	fmt.Printf("Successful Circles: %d\n", r.SuccessfulCircles)
	fmt.Printf("Failed Harvests: %d\n", r.FailedHarvests)
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Player: %s\n", s.Wallet)
	fmt.Printf("  Circles Created: %d\n", s.CirclesCreated)
	fmt.Printf("  Circles Joined: %d\n", s.CirclesJoined)
	fmt.Printf("  Circles Betrayed: %d\n", s.CirclesBetrayed)
	fmt.Printf("  Times Betrayed: %d\n", s.TimesBetrayed)
	fmt.Printf("  Total Kale Earned: %d\n", s.TotalKaleEarned)
}

func (o *Output) printPlayerEarnings(e PlayerEarnings) {
	fmt.Printf("Player: %s\n", e.Wallet)
	fmt.Printf("  Total Kale Earned: %d\n", e.TotalKaleEarned)
	fmt.Printf("  From Own Circles: %d\n", e.FromOwnCircles)
	fmt.Printf("  From Joined Circles: %d\n", e.FromJoinedCircles)
	fmt.Printf("  From Betrayals: %d\n", e.FromBetrayals)
}

func (o *Output) printScoreboard(entries []ScoreboardEntry) {
	fmt.Printf("Scoreboard (%d players):\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  %s: trust %d, betrayal ratio %d%%, %d kale\n",
			e.Wallet, e.TrustScore, e.BetrayalRatio, e.TotalKaleEarned)
	}
}

func (o *Output) printTotalStats(s TotalStats) {
	fmt.Printf("Players: %d\n", s.TotalPlayers)
	fmt.Printf("Circles Created: %d\n", s.TotalCirclesCreated)
	fmt.Printf("Circles Joined: %d\n", s.TotalCirclesJoined)
	fmt.Printf("Betrayals: %d\n", s.TotalBetrayals)
	fmt.Printf("Total Kale Earned: %d\n", s.TotalKaleEarned)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
