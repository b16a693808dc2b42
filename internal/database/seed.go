package database

import (
	"errors"
	"fmt"

	"github.com/wfunc/word-game/internal/game"
	"github.com/wfunc/word-game/internal/logger"
	"github.com/wfunc/word-game/internal/models"
	"github.com/wfunc/word-game/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultWords 内置的5字母词库
var DefaultWords = []string{
	"ABOUT", "ABOVE", "ABUSE", "ACTOR", "ACUTE", "ADMIT", "ADOPT", "ADULT", "AFTER", "AGAIN",
	"AGENT", "AGREE", "AHEAD", "ALARM", "ALBUM", "ALERT", "ALIEN", "ALIGN", "ALIKE", "ALIVE",
	"ALLOW", "ALONE", "ALONG", "ALTER", "AMONG", "ANGER", "ANGLE", "ANGRY", "APART", "APPLE",
	"APPLY", "ARENA", "ARGUE", "ARISE", "ARRAY", "ASIDE", "ASSET", "AVOID", "AWAKE", "AWARD",
	"AWARE", "BADLY", "BAKER", "BASES", "BASIC", "BEACH", "BEGAN", "BEGIN", "BEING", "BELOW",
	"BENCH", "BILLY", "BIRTH", "BLACK", "BLAME", "BLANK", "BLIND", "BLOCK", "BLOOD", "BOARD",
	"BOOST", "BOOTH", "BOUND", "BRAIN", "BRAND", "BRASS", "BRAVE", "BREAD", "BREAK", "BREED",
	"BRIEF", "BRING", "BROAD", "BROKE", "BROWN", "BUILD", "BUILT", "BUYER", "CABLE", "CALIF",
	"CARRY", "CATCH", "CAUSE", "CHAIN", "CHAIR", "CHAOS", "CHARM", "CHART", "CHASE", "CHEAP",
	"CHECK", "CHEST", "CHIEF", "CHILD", "CHINA", "CHOSE", "CIVIL", "CLAIM", "CLASS", "CLEAN",
	"CLEAR", "CLICK", "CLIMB", "CLOCK", "CLOSE", "CLOUD", "COACH", "COAST", "COULD", "COUNT",
	"COURT", "COVER", "CRAFT", "CRASH", "CRAZY", "CREAM", "CRIME", "CROSS", "CROWD", "CROWN",
	"CRUDE", "CURVE", "CYCLE", "DAILY", "DANCE", "DATED", "DEALT", "DEATH", "DEBUT", "DELAY",
	"DEPTH", "DOING", "DOUBT", "DOZEN", "DRAFT", "DRAMA", "DRANK", "DRAWN", "DREAM", "DRESS",
	"DRILL", "DRINK", "DRIVE", "DROVE", "DYING", "EAGER", "EARLY", "EARTH", "EIGHT", "ELITE",
	"EMPTY", "ENEMY", "ENJOY", "ENTER", "ENTRY", "EQUAL", "ERROR", "EVENT", "EVERY", "EXACT",
	"EXIST", "EXTRA", "FAITH", "FALSE", "FAULT", "FIBER", "FIELD", "FIFTH", "FIFTY", "FIGHT",
	"FINAL", "FIRST", "FIXED", "FLASH", "FLEET", "FLOOR", "FLUID", "FOCUS", "FORCE", "FORTH",
	"FORTY", "FORUM", "FOUND", "FRAME", "FRANK", "FRAUD", "FRESH", "FRONT", "FROST", "FRUIT",
	"FULLY", "FUNNY", "GIANT", "GIVEN", "GLASS", "GLOBE", "GOING", "GRACE", "GRADE", "GRAND",
	"GRANT", "GRASS", "GRAVE", "GREAT", "GREEN", "GROSS", "GROUP", "GROWN", "GUARD", "GUESS",
	"GUEST", "GUIDE", "HAPPY", "HARRY", "HEART", "HEAVY", "HORSE", "HOTEL", "HOUSE", "HUMAN",
	"IDEAL", "IMAGE", "INDEX", "INNER", "INPUT", "ISSUE", "JAPAN", "JIMMY", "JOINT", "JONES",
	"JUDGE", "KNOWN", "LABEL", "LARGE", "LASER", "LATER", "LAUGH", "LAYER", "LEARN", "LEASE",
	"LEAST", "LEAVE", "LEGAL", "LEVEL", "LEWIS", "LIGHT", "LIMIT", "LINKS", "LIVES", "LOCAL",
	"LOOSE", "LOWER", "LUCKY", "LUNCH", "LYING", "MAGIC", "MAJOR", "MAKER", "MARCH", "MARIA",
	"MATCH", "MAYBE", "MAYOR", "MEANT", "MEDIA", "METAL", "MIGHT", "MINOR", "MINUS", "MIXED",
	"MODEL", "MONEY", "MONTH", "MORAL", "MOTOR", "MOUNT", "MOUSE", "MOUTH", "MOVED", "MOVIE",
	"NEEDS", "NEVER", "NEWLY", "NIGHT", "NOISE", "NORTH", "NOTED", "NOVEL", "NURSE", "OCCUR",
	"OCEAN", "OFFER", "OFTEN", "ORDER", "OTHER", "OUGHT", "PAINT", "PANEL", "PAPER", "PARTY",
	"PEACE", "PETER", "PHASE", "PHONE", "PHOTO", "PIANO", "PIECE", "PILOT", "PITCH", "PLACE",
	"PLAIN", "PLANE", "PLANT", "PLATE", "PLAZA", "POINT", "POUND", "POWER", "PRESS", "PRICE",
	"PRIDE", "PRIME", "PRINT", "PRIOR", "PRIZE", "PROOF", "PROUD", "PROVE", "QUEEN", "QUICK",
	"QUIET", "QUITE", "RADIO", "RAISE", "RANGE", "RAPID", "RATIO", "REACH", "READY", "REALM",
	"REBEL", "REFER", "RELAX", "REPAY", "REPLY", "RIDER", "RIDGE", "RIGHT", "RIGID", "RIVER",
	"ROBOT", "ROGER", "ROMAN", "ROUGH", "ROUND", "ROUTE", "ROYAL", "RURAL", "SCALE", "SCENE",
	"SCOPE", "SCORE", "SENSE", "SERVE", "SETUP", "SEVEN", "SHALL", "SHAPE", "SHARE", "SHARP",
	"SHEET", "SHELF", "SHELL", "SHIFT", "SHINE", "SHIRT", "SHOCK", "SHOOT", "SHORT", "SHOWN",
	"SIDED", "SIGHT", "SILLY", "SINCE", "SIXTY", "SIZED", "SKILL", "SLEEP", "SLIDE", "SMALL",
	"SMART", "SMILE", "SMITH", "SMOKE", "SNAKE", "SOLAR", "SOLID", "SOLVE", "SORRY", "SOUND",
	"SOUTH", "SPACE", "SPARE", "SPEAK", "SPEED", "SPEND", "SPENT", "SPLIT", "SPOKE", "SPORT",
	"SQUAD", "STAFF", "STAGE", "STAKE", "STAND", "START", "STATE", "STEAM", "STEEL", "STEEP",
	"STEER", "STEPS", "STICK", "STILL", "STOCK", "STONE", "STOOD", "STORE", "STORM", "STORY",
	"STRIP", "STUCK", "STUDY", "STUFF", "STYLE", "SUGAR", "SUITE", "SUPER", "SWEET", "TABLE",
	"TAKEN", "TASTE", "TAXES", "TEACH", "TEETH", "TERRY", "TEXAS", "THANK", "THEFT", "THEIR",
	"THEME", "THERE", "THESE", "THICK", "THING", "THINK", "THIRD", "THOSE", "THREE", "THREW",
	"THROW", "THUMB", "TIGHT", "TIMER", "TIMES", "TITLE", "TODAY", "TOPIC", "TOTAL", "TOUCH",
	"TOUGH", "TOWER", "TRACK", "TRADE", "TRAIN", "TREAT", "TREND", "TRIAL", "TRIBE", "TRICK",
	"TRIED", "TRIES", "TRUCK", "TRULY", "TRUNK", "TRUST", "TRUTH", "TWICE", "TWIST", "TYLER",
	"UNDER", "UNDUE", "UNION", "UNITY", "UNTIL", "UPPER", "UPSET", "URBAN", "USAGE", "USUAL",
	"VALID", "VALUE", "VIDEO", "VIRUS", "VISIT", "VITAL", "VOCAL", "WASTE", "WATCH", "WATER",
	"WAVES", "WEIRD", "WELSH", "WHEEL", "WHERE", "WHICH", "WHILE", "WHITE", "WHOLE", "WHOSE",
	"WOMAN", "WOMEN", "WORLD", "WORRY", "WORSE", "WORST", "WORTH", "WOULD", "WRITE", "WRONG",
	"WROTE", "YARDS", "YOUNG", "YOUTH",}

// SeedWords 将内置词库写入数据库，已存在的单词跳过
func SeedWords(db *gorm.DB) (int, error) {
	created := 0
	for _, word := range DefaultWords {
		if !game.ValidateWord(word) {
			logger.Warn("跳过格式非法的内置单词", zap.String("word", word))
			continue
		}

		var existing models.GameWord
		err := db.Where("word = ?", word).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("查询单词失败: %w", err)
		}

		if err := db.Create(&models.GameWord{Word: word}).Error; err != nil {
			return created, fmt.Errorf("写入单词 %s 失败: %w", word, err)
		}
		created++
	}

	var total int64
	if err := db.Model(&models.GameWord{}).Count(&total).Error; err != nil {
		return created, err
	}

	logger.Info("词库初始化完成",
		zap.Int("created", created),
		zap.Int64("total", total),
	)
	return created, nil
}

// SeedAdmin 创建初始管理员账号，已存在则跳过
func SeedAdmin(db *gorm.DB, username, password string) error {
	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		logger.Warn("管理员账号已存在", zap.String("username", username))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &models.User{
			Username: username,
			Nickname: username,
			Role:     models.RoleAdmin,
			Status:   "active",
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		auth := &models.UserAuth{
			UserID:   admin.ID,
			Password: hashed,
		}
		if err := tx.Create(auth).Error; err != nil {
			return err
		}

		logger.Info("管理员账号已创建", zap.String("username", username))
		return nil
	})
}

// CleanupWords 删除不满足5个大写字母形状的词条，返回删除数量
func CleanupWords(db *gorm.DB) (int, error) {
	var words []models.GameWord
	if err := db.Find(&words).Error; err != nil {
		return 0, err
	}

	removed := 0
	for _, w := range words {
		if game.ValidateWord(w.Word) {
			continue
		}

		if err := db.Unscoped().Delete(&models.GameWord{}, w.ID).Error; err != nil {
			return removed, fmt.Errorf("删除单词 %s 失败: %w", w.Word, err)
		}
		logger.Info("移除非法词条", zap.String("word", w.Word))
		removed++
	}

	var total int64
	if err := db.Model(&models.GameWord{}).Count(&total).Error; err != nil {
		return removed, err
	}

	logger.Info("词库清理完成",
		zap.Int("removed", removed),
		zap.Int64("remaining", total),
	)
	return removed, nil
}
