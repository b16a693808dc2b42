package models

// GameWord 游戏词库表，存放作为谜底的5字母大写单词
type GameWord struct {
	BaseModel
	Word string `gorm:"uniqueIndex;size:5;not null" json:"word"`
}

// TableName 指定表名
func (GameWord) TableName() string {
	return "game_words"
}
