package utils

import (
	"reflect"
	"testing"
)

func TestUnique(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "Test Unique",
			in:   []string{"USB DIGITAL STILL CAMERA", "Canon", "USB DIGITAL STILL CAMERA"},
			want: []string{"USB DIGITAL STILL CAMERA", "Canon"},
		},
		{
			name: "Test Unique drops empty",
			in:   []string{"", "Nikon", ""},
			want: []string{"Nikon"},
		},
		{
			name: "Test Unique empty",
			in:   nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unique(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unique() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrContainsStrSliceItem(t *testing.T) {
	type args struct {
		item  string
		slice []string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "Test case-insensitive substring",
			args: args{item: "Vivitar usb digital still camera", slice: []string{"USB DIGITAL STILL CAMERA"}},
			want: true,
		},
		{
			name: "Test no match",
			args: args{item: "USB Input Device", slice: []string{"USB DIGITAL STILL CAMERA"}},
			want: false,
		},
		{
			name: "Test empty slice",
			args: args{item: "USB Digital Still Camera", slice: nil},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrContainsStrSliceItem(tt.args.item, tt.args.slice); got != tt.want {
				t.Errorf("StrContainsStrSliceItem() = %v, want %v", got, tt.want)
			}
		})
	}
}
