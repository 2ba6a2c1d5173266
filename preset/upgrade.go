package preset

import "fmt"

type Upgrade int

const (
	DreamBreaker Upgrade = iota
	Slide
	SolarWind
	AscendantLight
	SunGreaves
	SoulCutter
	Sunsetter
	Indignation
	HeliacalPower
	Strikebreak
	ClingGem

	upgradeCount
)

type upgradeInfo struct {
	option string
	key    string
	help   string
}

/* Order matches the Upgrades map in the template */
var upgrades = [upgradeCount]upgradeInfo{
	DreamBreaker:   {option: "dream_breaker", key: "attack", help: "attack"},
	Slide:          {option: "slide", key: "slide", help: "slide"},
	SolarWind:      {option: "solar_wind", key: "SlideJump", help: "slide jump"},
	AscendantLight: {option: "ascendant_light", key: "Light", help: "bounce attack"},
	SunGreaves:     {option: "sun_greaves", key: "airKick", help: "air kick"},
	SoulCutter:     {option: "soul_cutter", key: "projectile", help: "projectile"},
	Sunsetter:      {option: "sunsetter", key: "plunge", help: "plunge"},
	Indignation:    {option: "indignation", key: "powerBoost", help: "power boost"},
	HeliacalPower:  {option: "heliacal_power", key: "extraKick", help: "extra kick"},
	Strikebreak:    {option: "strikebreak", key: "chargeAttack", help: "charge attack"},
	ClingGem:       {option: "cling_gem", key: "wallRide", help: "wall ride"},
}

var (
	upgradeByKey    = make(map[string]Upgrade, upgradeCount)
	upgradeByOption = make(map[string]Upgrade, upgradeCount)
)

func init() {
	for i, u := range upgrades {
		upgradeByKey[u.key] = Upgrade(i)
		upgradeByOption[u.option] = Upgrade(i)
	}
}

func AllUpgrades() []Upgrade {
	all := make([]Upgrade, upgradeCount)
	for i := range all {
		all[i] = Upgrade(i)
	}
	return all
}

func (u Upgrade) valid() bool {
	return u >= 0 && u < upgradeCount
}

/* String returns the option name, eg. dream_breaker. */
func (u Upgrade) String() string {
	if !u.valid() {
		return fmt.Sprintf("Upgrade(%d)", int(u))
	}
	return upgrades[u].option
}

/* Key returns the name used as map key inside the asset, eg. attack. */
func (u Upgrade) Key() string {
	if !u.valid() {
		return ""
	}
	return upgrades[u].key
}

/* Description is the in-game ability the upgrade unlocks. */
func (u Upgrade) Description() string {
	if !u.valid() {
		return ""
	}
	return upgrades[u].help
}

func UpgradeByKey(key string) (Upgrade, bool) {
	u, ok := upgradeByKey[key]
	return u, ok
}

func ParseUpgrade(option string) (Upgrade, error) {
	u, ok := upgradeByOption[option]
	if !ok {
		return 0, &NameError{Err: ErrorUnrecognizedUpgradeOption, Name: option}
	}
	return u, nil
}
