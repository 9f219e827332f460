// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseXML_Subset(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "vk_subset.xml"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	e, err := ParseXML(f, DynamicState)
	if err != nil {
		t.Fatalf("ParseXML() error: %v", err)
	}

	want := []Field{
		{Name: "VK_DYNAMIC_STATE_VIEWPORT", Value: 0},
		{Name: "VK_DYNAMIC_STATE_SCISSOR", Value: 1},
		{Name: "VK_DYNAMIC_STATE_LINE_WIDTH", Value: 2},
		{Name: "VK_DYNAMIC_STATE_DEPTH_BIAS", Value: 3},
		{Name: "VK_DYNAMIC_STATE_CULL_MODE", Value: 1000267000, Origin: "VK_VERSION_1_3"},
		{Name: "VK_DYNAMIC_STATE_FRONT_FACE", Value: 1000267001, Origin: "VK_VERSION_1_3"},
		{Name: "VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV", Value: 1000087000, Origin: "VK_NV_clip_space_w_scaling"},
		{Name: "VK_DYNAMIC_STATE_LINE_STIPPLE_KHR", Value: 1000259000, Origin: "VK_KHR_line_rasterization"},
		{Name: "VK_DYNAMIC_STATE_NEGATIVE_EXT", Value: -1000006002, Origin: "VK_EXT_negative"},
	}
	if diff := cmp.Diff(want, e.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if e.Name != DynamicState {
		t.Errorf("Name = %q, want %q", e.Name, DynamicState)
	}
}

func TestParseXML_OtherEnum(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "vk_subset.xml"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	e, err := ParseXML(f, "VkPolygonMode")
	if err != nil {
		t.Fatalf("ParseXML() error: %v", err)
	}
	want := []string{"VK_POLYGON_MODE_FILL", "VK_POLYGON_MODE_FILL_RECTANGLE_NV"}
	if diff := cmp.Diff(want, e.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestParseXML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want ErrorKind
	}{
		{
			name: "not xml",
			doc:  "this is not a registry",
			want: ErrInvalidDocument,
		},
		{
			name: "missing enum",
			doc:  `<registry><enums name="VkFormat"/></registry>`,
			want: ErrEnumNotFound,
		},
		{
			name: "bad value",
			doc:  `<registry><enums name="VkDynamicState"><enum value="zero" name="VK_DYNAMIC_STATE_VIEWPORT"/></enums></registry>`,
			want: ErrInvalidValue,
		},
		{
			name: "offset without extension",
			doc: `<registry><enums name="VkDynamicState"/>
				<feature api="vulkan" name="VK_VERSION_1_3">
				<require><enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_CULL_MODE"/></require>
				</feature></registry>`,
			want: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXML(strings.NewReader(tt.doc), DynamicState)
			var rerr *Error
			if !errors.As(err, &rerr) {
				t.Fatalf("ParseXML() error = %v, want *Error", err)
			}
			if rerr.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", rerr.Kind, tt.want)
			}
		})
	}
}

func TestEnumValue(t *testing.T) {
	tests := []struct {
		name string
		e    xmlEnum
		ext  int64
		want int64
	}{
		{"value", xmlEnum{Name: "A", Value: "7"}, 0, 7},
		{"hex value", xmlEnum{Name: "A", Value: "0x10"}, 0, 16},
		{"offset", xmlEnum{Name: "A", Offset: "3"}, 100, 1000099003},
		{"extnumber wins", xmlEnum{Name: "A", Offset: "1", Extnumber: "268"}, 100, 1000267001},
		{"negative", xmlEnum{Name: "A", Offset: "0", Dir: "-"}, 1, -1000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enumValue(tt.e, tt.ext)
			if err != nil {
				t.Fatalf("enumValue() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("enumValue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		apis string
		want bool
	}{
		{"", true},
		{"vulkan", true},
		{"vulkan,vulkansc", true},
		{"vulkansc", false},
		{"disabled", false},
		{"vulkansc, vulkan", true},
	}
	for _, tt := range tests {
		if got := supports(tt.apis); got != tt.want {
			t.Errorf("supports(%q) = %v, want %v", tt.apis, got, tt.want)
		}
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		src  string
		enum string
		want []string
	}{
		{
			name: "document",
			src:  "enum: VkDynamicState\nfields:\n  - name: VK_DYNAMIC_STATE_VIEWPORT\n  - name: VK_DYNAMIC_STATE_SCISSOR\n",
			enum: DynamicState,
			want: []string{"VK_DYNAMIC_STATE_VIEWPORT", "VK_DYNAMIC_STATE_SCISSOR"},
		},
		{
			name: "bare list",
			src:  "- name: VK_DYNAMIC_STATE_SCISSOR\n- name: VK_DYNAMIC_STATE_VIEWPORT\n",
			enum: DynamicState,
			want: []string{"VK_DYNAMIC_STATE_SCISSOR", "VK_DYNAMIC_STATE_VIEWPORT"},
		},
		{
			name: "json",
			src:  `{"enum": "VkDynamicState", "fields": [{"name": "VK_DYNAMIC_STATE_LINE_WIDTH", "value": 2}]}`,
			enum: DynamicState,
			want: []string{"VK_DYNAMIC_STATE_LINE_WIDTH"},
		},
		{
			name: "other enum",
			src:  "enum: VkPolygonMode\nfields:\n  - name: VK_POLYGON_MODE_FILL\n",
			enum: "VkPolygonMode",
			want: []string{"VK_POLYGON_MODE_FILL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseList([]byte(tt.src))
			if err != nil {
				t.Fatalf("ParseList() error: %v", err)
			}
			if e.Name != tt.enum {
				t.Errorf("Name = %q, want %q", e.Name, tt.enum)
			}
			if diff := cmp.Diff(tt.want, e.Names()); diff != "" {
				t.Errorf("names (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseList_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"scalar", "VK_DYNAMIC_STATE_VIEWPORT\n"},
		{"empty", ""},
		{"unknown key", "- name: VK_DYNAMIC_STATE_VIEWPORT\n  commands: [vkCmdSetViewport]\n"},
		{"missing name", "- value: 3\n"},
		{"bad yaml", "fields: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseList([]byte(tt.src))
			var rerr *Error
			if !errors.As(err, &rerr) || rerr.Kind != ErrInvalidDocument {
				t.Errorf("ParseList() error = %v, want InvalidDocument", err)
			}
		})
	}
}

func TestBuiltin(t *testing.T) {
	e := Builtin()

	if e.Name != DynamicState {
		t.Errorf("Name = %q, want %q", e.Name, DynamicState)
	}
	if e.Len() != 72 {
		t.Errorf("Len() = %d, want 72", e.Len())
	}

	seen := make(map[string]struct{})
	for _, f := range e.Fields {
		if !strings.HasPrefix(f.Name, "VK_DYNAMIC_STATE_") {
			t.Errorf("field %q lacks prefix", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			t.Errorf("field %q repeated", f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	depthBias, ok := e.Field("VK_DYNAMIC_STATE_DEPTH_BIAS")
	if !ok || depthBias.Value != 3 {
		t.Errorf("DEPTH_BIAS = %+v, %v", depthBias, ok)
	}
	cullMode, ok := e.Field("VK_DYNAMIC_STATE_CULL_MODE")
	if !ok || cullMode.Value != 1000267000 || cullMode.Origin != "VK_VERSION_1_3" {
		t.Errorf("CULL_MODE = %+v, %v", cullMode, ok)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "feed.yaml")
	if err := os.WriteFile(yamlPath, []byte("- name: VK_DYNAMIC_STATE_VIEWPORT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := Load(yamlPath, DynamicState)
	if err != nil {
		t.Fatalf("Load(yaml) error: %v", err)
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}

	e, err = Load(filepath.Join("testdata", "vk_subset.xml"), DynamicState)
	if err != nil {
		t.Fatalf("Load(xml) error: %v", err)
	}
	if e.Len() != 9 {
		t.Errorf("xml Len() = %d, want 9", e.Len())
	}

	if _, err := Load(yamlPath, "VkPolygonMode"); err == nil {
		t.Error("Load() with mismatched enum succeeded")
	}

	_, err = Load(filepath.Join(dir, "feed.txt"), DynamicState)
	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Kind != ErrUnsupportedFormat {
		t.Errorf("Load(.txt) error = %v, want UnsupportedFormat", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.xml"), DynamicState); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrInvalidDocument, "InvalidDocument"},
		{ErrEnumNotFound, "EnumNotFound"},
		{ErrInvalidValue, "InvalidValue"},
		{ErrUnsupportedFormat, "UnsupportedFormat"},
		{ErrorKind(255), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError(ErrInvalidDocument, cause, "decode %s", "feed")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if got := err.Error(); !strings.Contains(got, "decode feed") || !strings.Contains(got, "boom") {
		t.Errorf("Error() = %q", got)
	}
}
