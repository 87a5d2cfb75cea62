package loop

// Event is a notable gameplay moment reported to the front end, mostly so
// it can play a sound.
type Event int

const (
	EventPlayerHit Event = iota
	EventShieldHit
	EventGameOver
	EventEnemyDefeated
	EventHelperUnlocked
	EventLifeGift
	EventResumed
)

var eventNames = [...]string{
	EventPlayerHit:      "player_hit",
	EventShieldHit:      "shield_hit",
	EventGameOver:       "game_over",
	EventEnemyDefeated:  "enemy_defeated",
	EventHelperUnlocked: "helper_unlocked",
	EventLifeGift:       "life_gift",
	EventResumed:        "resumed",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// EventFunc receives events as they happen during a tick.
type EventFunc func(Event)
