package script

// Modifier - клавиша-модификатор, для которой создаётся горячая клавиша.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win
)

// modifierPrefix маппинг Modifier -> префикс AutoHotkey
var modifierPrefix = map[Modifier]string{
	ModCtrl:  "^",
	ModAlt:   "!",
	ModSuper: "#",
}

// RuleModifiers - модификаторы одного блока правил, в порядке вывода.
// Сочетания с Shift не нужны: Shift сам по себе не вызывает команд.
func RuleModifiers() []Modifier {
	return []Modifier{ModCtrl, ModAlt, ModSuper}
}

// Prefix возвращает префикс AutoHotkey для модификатора.
func (m Modifier) Prefix() string {
	return modifierPrefix[m]
}
