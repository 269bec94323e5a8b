package vocab

// Dart v2 の語彙です。
var (
	V2AspectRatioMap = New("v2.aspect_ratio",
		Entry[AspectRatio]{AspectRatioUltraWide, "<|aspect_ratio:ultra_wide|>"},
		Entry[AspectRatio]{AspectRatioWide, "<|aspect_ratio:wide|>"},
		Entry[AspectRatio]{AspectRatioSquare, "<|aspect_ratio:square|>"},
		Entry[AspectRatio]{AspectRatioTall, "<|aspect_ratio:tall|>"},
		Entry[AspectRatio]{AspectRatioUltraTall, "<|aspect_ratio:ultra_tall|>"},
	)

	V2RatingMap = New("v2.rating",
		Entry[Rating]{RatingGeneral, "<|rating:general|>"},
		Entry[Rating]{RatingSensitive, "<|rating:sensitive|>"},
		Entry[Rating]{RatingQuestionable, "<|rating:questionable|>"},
		Entry[Rating]{RatingExplicit, "<|rating:explicit|>"},
	)

	V2LengthMap = New("v2.length",
		Entry[Length]{LengthVeryShort, "<|length:very_short|>"},
		Entry[Length]{LengthShort, "<|length:short|>"},
		Entry[Length]{LengthMedium, "<|length:medium|>"},
		Entry[Length]{LengthLong, "<|length:long|>"},
		Entry[Length]{LengthVeryLong, "<|length:very_long|>"},
	)

	V2IdentityMap = New("v2.identity",
		Entry[Identity]{IdentityNone, "<|identity:none|>"},
		Entry[Identity]{IdentityLax, "<|identity:lax|>"},
		Entry[Identity]{IdentityStrict, "<|identity:strict|>"},
	)
)
