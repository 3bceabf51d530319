package service

// MsgLeaderboardUpdate names the message pushed to dashboard watchers
// after a leaderboard refresh.
const MsgLeaderboardUpdate = "leaderboard_update"

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastDashboard(msgType string, payload interface{})
}
