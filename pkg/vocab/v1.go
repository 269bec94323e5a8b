package vocab

// Dart v1 の語彙です。v1 には縦横比と identity がありません。
var (
	V1RatingMap = New("v1.rating",
		Entry[Rating]{RatingSFW, "rating:sfw"},
		Entry[Rating]{RatingGeneral, "rating:sfw, rating:general"},
		Entry[Rating]{RatingSensitive, "rating:sfw, rating:sensitive"},
		Entry[Rating]{RatingNSFW, "rating:nsfw"},
		Entry[Rating]{RatingQuestionable, "rating:nsfw, rating:questionable"},
		Entry[Rating]{RatingExplicit, "rating:nsfw, rating:explicit"},
	)

	V1LengthMap = New("v1.length",
		Entry[Length]{LengthVeryShort, "<|very_short|>"},
		Entry[Length]{LengthShort, "<|short|>"},
		Entry[Length]{LengthLong, "<|long|>"},
		Entry[Length]{LengthVeryLong, "<|very_long|>"},
	)
)
