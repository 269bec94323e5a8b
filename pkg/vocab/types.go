package vocab

// Rating はコンテンツの安全性分類のラベルです。
type Rating string

// Length は生成するタグ列の長さのラベルです。
type Length string

// AspectRatio は生成画像の縦横比のラベルです。
type AspectRatio string

// Identity は入力タグへの忠実度のラベルです。
type Identity string

const (
	RatingSFW          Rating = "sfw"
	RatingGeneral      Rating = "general"
	RatingSensitive    Rating = "sensitive"
	RatingNSFW         Rating = "nsfw"
	RatingQuestionable Rating = "questionable"
	RatingExplicit     Rating = "explicit"
)

const (
	LengthVeryShort Length = "very_short"
	LengthShort     Length = "short"
	LengthMedium    Length = "medium"
	LengthLong      Length = "long"
	LengthVeryLong  Length = "very_long"
)

const (
	AspectRatioTooTall       AspectRatio = "too_tall"
	AspectRatioUltraTall     AspectRatio = "ultra_tall"
	AspectRatioTallWallpaper AspectRatio = "tall_wallpaper"
	AspectRatioTall          AspectRatio = "tall"
	AspectRatioSquare        AspectRatio = "square"
	AspectRatioWide          AspectRatio = "wide"
	AspectRatioWideWallpaper AspectRatio = "wide_wallpaper"
	AspectRatioUltraWide     AspectRatio = "ultra_wide"
	AspectRatioTooWide       AspectRatio = "too_wide"
)

const (
	IdentityNone   Identity = "none"
	IdentityLax    Identity = "lax"
	IdentityStrict Identity = "strict"
)
