package entity

import (
	"time"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"

	SideX = "x"
	SideO = "o"
)

// GameRecord - the archived history of one game played against the referee.
type GameRecord struct {
	ID         string     `json:"id"`
	Side       string     `json:"side,omitempty"`
	Moves      []Move     `json:"moves"`
	Result     string     `json:"result,omitempty"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func NewGameRecord(id string, now time.Time) *GameRecord {
	return &GameRecord{
		ID:        id,
		Moves:     []Move{},
		Status:    StatusOngoing,
		StartedAt: now,
	}
}

func (that *GameRecord) AddMove(move Move) {
	that.Moves = append(that.Moves, move)
}

// Finish - stamps the result. Finishing twice keeps the first result.
func (that *GameRecord) Finish(result string, now time.Time) {
	if that.IsFinished() {
		return
	}

	that.Result = result
	that.Status = StatusFinished
	that.FinishedAt = &now
}

func (that *GameRecord) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameRecord) IsOngoing() bool {
	return that.Status == StatusOngoing
}
