package core

// SoundType represents the audio cues the simulation can request
type SoundType int

const (
	SoundShoot         SoundType = iota // Laser spawn
	SoundInvaderKilled                  // Laser hit on any target
	SoundInvaderNote0                   // Formation cadence, note 0
	SoundInvaderNote1
	SoundInvaderNote2
	SoundInvaderNote3
	SoundTypeCount
)

// InvaderNoteCount is the length of the percussive cadence cycle
const InvaderNoteCount = 4

// soundAssets maps each cue to its opaque asset identifier
var soundAssets = [SoundTypeCount]string{
	SoundShoot:         "sounds/shoot.ogg",
	SoundInvaderKilled: "sounds/invaderkilled.ogg",
	SoundInvaderNote0:  "sounds/fastinvader0.ogg",
	SoundInvaderNote1:  "sounds/fastinvader1.ogg",
	SoundInvaderNote2:  "sounds/fastinvader2.ogg",
	SoundInvaderNote3:  "sounds/fastinvader3.ogg",
}

// Asset returns the asset identifier for the sound, empty for unknown types
func (s SoundType) Asset() string {
	if s < 0 || s >= SoundTypeCount {
		return ""
	}
	return soundAssets[s]
}

// InvaderNote returns the cadence sound for note index i (wrapped to 0..3)
func InvaderNote(i int) SoundType {
	i %= InvaderNoteCount
	if i < 0 {
		i += InvaderNoteCount
	}
	return SoundInvaderNote0 + SoundType(i)
}

func (s SoundType) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundInvaderKilled:
		return "invader_killed"
	case SoundInvaderNote0, SoundInvaderNote1, SoundInvaderNote2, SoundInvaderNote3:
		return "invader_note"
	default:
		return "unknown"
	}
}
