package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/wfunc/word-game/internal/game"
)

// GameSession 游戏会话表，一条记录对应一局游戏
//
// 不变式：IsCompleted=false 时 IsWon=false 且 CompletedAt 为空；
// Guesses 长度不超过每局最大猜测次数；每个用户同时最多一局未完成。
type GameSession struct {
	BaseModel
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	WordID      uint        `gorm:"not null" json:"word_id"`
	SessionID   string      `gorm:"uniqueIndex;size:64;not null" json:"session_id"`
	Guesses     StringArray `gorm:"type:json" json:"guesses"`
	IsCompleted bool        `gorm:"default:false;index" json:"is_completed"`
	IsWon       bool        `gorm:"default:false" json:"is_won"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`

	// 关联（User 不直接嵌入，避免循环依赖）
	Word GameWord `gorm:"foreignKey:WordID" json:"word,omitempty"`
}

// FeedbackArray 以JSON形式存储的逐位反馈列
type FeedbackArray []game.LetterFeedback

// Value 实现 driver.Valuer 接口
func (f FeedbackArray) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	return json.Marshal(f)
}

// Scan 实现 sql.Scanner 接口
func (f *FeedbackArray) Scan(value interface{}) error {
	if value == nil {
		*f = FeedbackArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		strVal, ok := value.(string)
		if !ok {
			return nil
		}
		bytes = []byte(strVal)
	}
	return json.Unmarshal(bytes, f)
}

// GameGuess 单次猜测记录表，随会话级联删除
type GameGuess struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	SessionID uint          `gorm:"not null;index" json:"session_id"`
	Word      string        `gorm:"size:5;not null" json:"word"`
	Feedback  FeedbackArray `gorm:"type:json" json:"feedback"`
	IsCorrect bool          `gorm:"default:false" json:"is_correct"`
	CreatedAt time.Time     `json:"created_at"`

	// 关联
	Session GameSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (GameGuess) TableName() string {
	return "game_guesses"
}
