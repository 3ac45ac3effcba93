package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/epic-rps/internal/core"
)

// keyActions maps physical keys to game actions. Digits on the main row
// and the keypad both select moves.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyDigit1:  core.ActionRock,
	ebiten.KeyDigit2:  core.ActionPaper,
	ebiten.KeyDigit3:  core.ActionScissors,
	ebiten.KeyNumpad1: core.ActionRock,
	ebiten.KeyNumpad2: core.ActionPaper,
	ebiten.KeyNumpad3: core.ActionScissors,
	ebiten.KeyR:       core.ActionRestart,
	ebiten.KeyEscape:  core.ActionQuit,
	ebiten.KeyQ:       core.ActionQuit,
}

// pollInput fills frame with the actions whose keys went down this tick.
// Any other key is ignored.
func pollInput(frame *core.InputFrame, buf []ebiten.Key) []ebiten.Key {
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	for _, k := range buf {
		if a, ok := keyActions[k]; ok {
			frame.Set(a)
		}
	}
	return buf
}
