package vocab

// Dart v3 の語彙です（実験的）。v1/v2 とは互換性がありません。
var (
	V3AspectRatioMap = New("v3.aspect_ratio",
		Entry[AspectRatio]{AspectRatioTooTall, "<|aspect_ratio:too_tall|>"},
		Entry[AspectRatio]{AspectRatioTallWallpaper, "<|aspect_ratio:tall_wallpaper|>"},
		Entry[AspectRatio]{AspectRatioTall, "<|aspect_ratio:tall|>"},
		Entry[AspectRatio]{AspectRatioSquare, "<|aspect_ratio:square|>"},
		Entry[AspectRatio]{AspectRatioWide, "<|aspect_ratio:wide|>"},
		Entry[AspectRatio]{AspectRatioWideWallpaper, "<|aspect_ratio:wide_wallpaper|>"},
		Entry[AspectRatio]{AspectRatioTooWide, "<|aspect_ratio:too_wide|>"},
	)

	V3RatingMap = New("v3.rating",
		Entry[Rating]{RatingGeneral, "<|rating:general|>"},
		Entry[Rating]{RatingSensitive, "<|rating:sensitive|>"},
		Entry[Rating]{RatingQuestionable, "<|rating:questionable|>"},
		Entry[Rating]{RatingExplicit, "<|rating:explicit|>"},
	)

	V3LengthMap = New("v3.length",
		Entry[Length]{LengthVeryShort, "<|length:very_short|>"},
		Entry[Length]{LengthShort, "<|length:short|>"},
		Entry[Length]{LengthMedium, "<|length:medium|>"},
		Entry[Length]{LengthLong, "<|length:long|>"},
		Entry[Length]{LengthVeryLong, "<|length:very_long|>"},
	)
)
