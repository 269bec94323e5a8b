package domain

// BatchJob は複数のプロンプトをまとめてフォーマットするためのジョブ定義です。
type BatchJob struct {
	Title string `json:"title" yaml:"title"`
	// Schema はエントリ側で指定がない場合に使うスキーマのバージョンです。
	Schema  string     `json:"schema" yaml:"schema"`
	Entries []JobEntry `json:"entries" yaml:"entries"`
}

// JobEntry は1件のプロンプト入力です。列挙値はラベル文字列のまま保持します。
type JobEntry struct {
	ID          string `json:"id" yaml:"id"`
	Schema      string `json:"schema,omitempty" yaml:"schema,omitempty"`
	Rating      string `json:"rating,omitempty" yaml:"rating,omitempty"`
	Length      string `json:"length,omitempty" yaml:"length,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty" yaml:"aspect_ratio,omitempty"`
	Identity    string `json:"identity,omitempty" yaml:"identity,omitempty"`
	Copyright   string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Character   string `json:"character,omitempty" yaml:"character,omitempty"`
	Tags        string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Request はエントリからフォーマット要求を取り出します。
func (e JobEntry) Request() FormatRequest {
	return FormatRequest{
		Copyright: e.Copyright,
		Character: e.Character,
		InputTags: e.Tags,
	}
}

// BatchResult は1エントリの処理結果です。失敗した場合は Err が設定されます。
type BatchResult struct {
	Entry  JobEntry      `json:"entry" yaml:"entry"`
	Result *FormatResult `json:"result,omitempty" yaml:"result,omitempty"`
	Err    error         `json:"-" yaml:"-"`
}

// Failed はエントリの処理が失敗したかを返します。
func (r BatchResult) Failed() bool {
	return r.Err != nil
}
