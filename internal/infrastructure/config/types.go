package config

// Settings is the root config for config.yaml
type Settings struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Game    GameRules     `yaml:"game"`
	Audio   AudioConfig   `yaml:"audio"`
	Levels  LevelsConfig  `yaml:"levels"`
	Save    SaveConfig    `yaml:"save"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// PlayerConfig tunes the player's arcade body.
type PlayerConfig struct {
	GroundAcceleration float64 `yaml:"groundAcceleration"`
	AirAcceleration    float64 `yaml:"airAcceleration"`
	SpeedMultiplier    float64 `yaml:"speedMultiplier"`
	DragX              float64 `yaml:"dragX"`
	MaxVelocityY       float64 `yaml:"maxVelocityY"`
	JumpVelocity       float64 `yaml:"jumpVelocity"`
	DoubleJumpVelocity float64 `yaml:"doubleJumpVelocity"`
	StompBounce        float64 `yaml:"stompBounce"`
	SpringVelocity     float64 `yaml:"springVelocity"`
	DoubleJumpDelayMs  int     `yaml:"doubleJumpDelayMs"`
	DeathDelayMs       int     `yaml:"deathDelayMs"`
	BodyWidth          float64 `yaml:"bodyWidth"`
}

// GameRules holds the session rules.
type GameRules struct {
	MaxLevelTime int `yaml:"maxLevelTime"`
	Lives        int `yaml:"lives"`
	HP           int `yaml:"hp"`
	GemsPerLife  int `yaml:"gemsPerLife"`
}

type AudioConfig struct {
	Music       string  `yaml:"music"`
	Jump        string  `yaml:"jump"`
	Coin        string  `yaml:"coin"`
	MusicVolume float64 `yaml:"musicVolume"`
	JumpVolume  float64 `yaml:"jumpVolume"`
	CoinVolume  float64 `yaml:"coinVolume"`
	SampleRate  int     `yaml:"sampleRate"`
}

type LevelsConfig struct {
	Count      int    `yaml:"count"`
	MapPattern string `yaml:"mapPattern"`
	BossLevels []int  `yaml:"bossLevels"`
}

type SaveConfig struct {
	Path string `yaml:"path"`
}

// IsBossLevel reports whether level n ends with a boss fight.
func (c LevelsConfig) IsBossLevel(n int) bool {
	for _, b := range c.BossLevels {
		if b == n {
			return true
		}
	}
	return false
}

// DefaultSettings returns the built-in settings used when no file parses.
func DefaultSettings() Settings {
	return Settings{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    60,
			Title:        "Critter Quest",
		},
		Physics: PhysicsConfig{Gravity: 1000},
		Player: PlayerConfig{
			GroundAcceleration: 300,
			AirAcceleration:    300,
			SpeedMultiplier:    2,
			DragX:              1000,
			MaxVelocityY:       800,
			JumpVelocity:       500,
			DoubleJumpVelocity: 275,
			StompBounce:        350,
			SpringVelocity:     850,
			DoubleJumpDelayMs:  500,
			DeathDelayMs:       850,
			BodyWidth:          18,
		},
		Game: GameRules{
			MaxLevelTime: 180,
			Lives:        5,
			HP:           1,
			GemsPerLife:  100,
		},
		Audio: AudioConfig{
			Music:       "audio/music.ogg",
			Jump:        "audio/jump.wav",
			Coin:        "audio/coin_collected.wav",
			MusicVolume: 0.35,
			JumpVolume:  0.35,
			CoinVolume:  0.2,
			SampleRate:  44100,
		},
		Levels: LevelsConfig{
			Count:      15,
			MapPattern: "tilemaps/level%d.json",
			BossLevels: []int{5, 10, 15},
		},
		Save: SaveConfig{Path: "~/.critterquest/save.db"},
	}
}
