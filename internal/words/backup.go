package words

// Backup is the built-in word list used when every remote tier fails.
// Every entry is exactly five uppercase letters.
var Backup = []string{
	"ABBEY", "ABOUT", "ACTOR", "ADAPT", "ADOPT", "ADORE", "AFTER", "AGAIN",
	"AGENT", "ALARM", "ALBUM", "ALERT", "ALIKE", "ALIVE", "ALLOW", "ALONE",
	"ALONG", "ALTER", "AMBER", "ANGEL", "ANGER", "ANGRY", "ANNOY", "APPLE",
	"APRIL", "ARGUE", "ARISE", "ARROW", "AUDIO", "AUNTY", "AVOID", "AWARD",
	"AWARE", "BADGE", "BASIC", "BEACH", "BEGIN", "BEING", "BELOW", "BENCH",
	"BIRTH", "BLACK", "BLAME", "BLIND", "BLOCK", "BLOOD", "BOARD", "BORED",
	"BRAIN", "BRAND", "BREAD", "BREAK", "BRICK", "BRIDE", "BRING", "BROAD",
	"BROWN", "BRUSH", "BUILD", "BUNCH", "CANDY", "CARRY", "CHAIN", "CHAIR",
	"CHASE", "CHEAP", "CHECK", "CHEER", "CHEST", "CHIEF", "CHILD", "CHOSE",
	"CLAIM", "CLASS", "CLEAN", "CLEAR", "CLIMB", "CLOCK", "CLOSE", "CLOTH",
	"CLOUD", "COACH", "COAST", "COUNT", "COURT", "COVER", "CRASH", "CRAZY",
	"CRIME", "CROSS", "CROWD", "CRUEL", "DAILY", "DANCE", "DEATH", "DELAY",
	"DEPTH", "DIRTY", "DONOR", "DOUBT", "DOZEN", "DRAFT", "DRAMA", "DREAM",
	"DRESS", "DRINK", "DRIVE", "DUTCH", "EAGER", "EARLY", "EARTH", "EIGHT",
	"ELITE", "EMPTY", "ENEMY", "ENJOY", "ENTER", "EQUAL", "ERROR", "EVENT",
	"EVERY", "EXACT", "EXIST", "EXTRA", "FAITH", "FALSE", "FAULT", "FAVOR",
	"FENCE", "FEVER", "FIGHT", "FINAL", "FIRST", "FIXED", "FLASH", "FLESH",
	"FLOOD", "FLOOR", "FOCUS", "FORCE", "FORTY", "FOUND", "FRAME", "FRESH",
	"FRONT", "FRUIT", "FUNNY", "GIANT", "GLASS", "GLOBE", "GRAND", "GRASS",
	"GREEN", "GROSS", "GROUP", "GROWN", "GUARD", "GUESS", "GUIDE", "HAPPY",
	"HEARD", "HEART", "HEAVY", "HONEY", "HOTEL", "HOUSE", "HUMAN", "HUMOR",
	"IDEAL", "IMAGE", "IMPLY", "INPUT", "IRONY", "JUICE", "KNIFE", "LABEL",
	"LARGE", "LAUGH", "LEARN", "LEAST", "LEAVE", "LEGAL", "LEVEL", "LIGHT",
	"LIMIT", "LOCAL", "LOOSE", "LOVER", "LOWER", "LUCKY", "LUNCH", "MAJOR",
	"MARCH", "MARRY", "MATCH", "MAYBE", "METAL", "MIXED", "MONEY", "MONTH",
	"MOTOR", "MOUNT", "MOUSE", "MOUTH", "MOVIE", "MUSIC", "NAKED", "NASTY",
	"NIGHT", "NOISE", "NORTH", "OCCUR", "OCEAN", "OFFER", "OFTEN", "ORDER",
	"OTHER", "OUGHT", "PAINT", "PANIC", "PAPER", "PARTY", "PASTA", "PAUSE",
	"PEACH", "PHONE", "PIANO", "PILOT", "PITCH", "PLACE", "PLAIN", "PLANE",
	"PLANT", "PLATE", "POINT", "POUND", "POWER", "PRESS", "PRICE", "PRIDE",
	"PRIME", "PRIZE", "PROOF", "PROUD", "PUPIL", "QUIET", "RADIO", "RAISE",
	"RANGE", "RAPID", "REACH", "REACT", "READY", "REFER", "RELAX", "REPLY",
	"RIVER", "ROBOT", "ROUGH", "ROUND", "ROYAL", "RURAL", "SADLY", "SALAD",
	"SCALE", "SCARE", "SCENE", "SCOPE", "SENSE", "SERVE", "SEVEN", "SHADE",
	"SHAKE", "SHAME", "SHAPE", "SHARE", "SHARP", "SHEEP", "SHEET", "SHELF",
	"SHELL", "SHIFT", "SHINE", "SHIRT", "SHOCK", "SHOOT", "SHORT", "SHOWN",
	"SIGHT", "SILLY", "SINCE", "SIXTH", "SLEEP", "SLICE", "SLIDE", "SMALL",
	"SMART", "SMILE", "SMOKE", "SOLID", "SOLVE", "SORRY", "SOUND", "SOUTH",
	"SPACE", "SPARE", "SPEAK", "SPEED", "SPEND", "SPOON", "SPORT", "STAFF",
	"STAGE", "STAND", "START", "STATE", "STEAM", "STEEL", "STICK", "STILL",
	"STONE", "STORE", "STORM", "STORY", "STYLE", "SUGAR", "SWEET", "TABLE",
	"TASTE", "TEACH", "THANK", "THEME", "THICK", "THING", "THINK", "THIRD",
	"TIGER", "TIGHT", "TITLE", "TODAY", "TOTAL", "TOUCH", "TOWER", "TRACK",
	"TRADE", "TRAIN", "TREAT", "TREND", "TRIAL", "TRICK", "TRUCK", "TRUST",
	"TRUTH", "TWICE", "UNCLE", "UNDER", "UNION", "UNITY", "UPPER", "URBAN",
	"USAGE", "USUAL", "VALID", "VALUE", "VIDEO", "VISIT", "VITAL", "VOICE",
	"WASTE", "WATCH", "WATER", "WHEAT", "WHEEL", "WHERE", "WHICH", "WHILE",
	"WHITE", "WHOLE", "WIDTH", "WOMAN", "WORLD", "WORRY", "WORTH", "WOUND",
	"WRITE", "WRONG", "YIELD", "YOUNG", "YOUTH",
}
