package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBatchJob_JSON(t *testing.T) {
	t.Run("ジョブ定義のJSONを読み込めること", func(t *testing.T) {
		inputJSON := `{
			"title": "テストジョブ",
			"schema": "v2",
			"entries": [
				{
					"id": "miku",
					"rating": "auto",
					"character": "hatsune miku",
					"tags": "1girl, solo"
				}
			]
		}`

		var job BatchJob
		if err := json.Unmarshal([]byte(inputJSON), &job); err != nil {
			t.Fatalf("パース失敗: %v", err)
		}
		if job.Title != "テストジョブ" {
			t.Errorf("タイトルが違います: %s", job.Title)
		}
		if len(job.Entries) != 1 || job.Entries[0].Tags != "1girl, solo" {
			t.Error("エントリが正しくパースされていません")
		}
	})
}

func TestBatchJob_ResolveSchemas(t *testing.T) {
	job := BatchJob{
		Schema: "v2",
		Entries: []JobEntry{
			{ID: "a"},
			{ID: "b", Schema: "v1"},
		},
	}

	entries := job.ResolveSchemas()
	if entries[0].Schema != "v2" || entries[1].Schema != "v1" {
		t.Errorf("スキーマの補完が正しくありません: %+v", entries)
	}
	if job.Entries[0].Schema != "" {
		t.Error("元のジョブが変更されています")
	}

	want := []string{"v1", "v2"}
	if got := entries.UniqueSchemas(); !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueSchemas() = %v, want %v", got, want)
	}
}

func TestJobEntry_Request(t *testing.T) {
	e := JobEntry{Copyright: "vocaloid", Character: "hatsune miku", Tags: "1girl"}
	want := FormatRequest{Copyright: "vocaloid", Character: "hatsune miku", InputTags: "1girl"}
	if got := e.Request(); got != want {
		t.Errorf("Request() = %+v, want %+v", got, want)
	}
}

func TestFormatResult_Outputs(t *testing.T) {
	r := FormatResult{Prompt: "p", Copyright: "c", Character: "ch", InputTags: "t"}
	want := []any{"p", "c", "ch", "t"}
	if got := r.Outputs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Outputs() = %v, want %v", got, want)
	}
}
