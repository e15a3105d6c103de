package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "fileName",
			value:     "courses.csv",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "fileName",
			value:     "",
			wantErr:   true,
			wantMsg:   "file name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "courseID",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "course ID is required",
		},
		{
			name:      "unknown field keeps its name",
			fieldName: "term",
			value:     "",
			wantErr:   true,
			wantMsg:   "term is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if valErr.Message != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, valErr.Message)
				}
			}
		})
	}
}

func TestParseCourseInput(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantID       string
		wantAdjusted bool
		wantErr      bool
	}{
		{name: "plain", input: "CSCI200", wantID: "CSCI200"},
		{name: "lowercase", input: " math201 ", wantID: "MATH201"},
		{name: "pasted row", input: "CSCI300,Algorithms", wantID: "CSCI300", wantAdjusted: true},
		{name: "empty", input: "", wantErr: true},
		{name: "digits first", input: "300CSCI", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCourseInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCourseInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("expected ErrInvalidID, got %v", err)
				}
				return
			}
			if got.ID != tt.wantID || got.Adjusted != tt.wantAdjusted {
				t.Errorf("expected (%s, %v), got (%s, %v)", tt.wantID, tt.wantAdjusted, got.ID, got.Adjusted)
			}
		})
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		input       string
		want        string
		wantDropped bool
	}{
		{input: "courses.csv", want: "courses.csv"},
		{input: "  courses.csv  ", want: "courses.csv"},
		{input: "courses.csv,", want: "courses.csv", wantDropped: true},
		{input: "courses.csv , ", want: "courses.csv", wantDropped: true},
		{input: ",", want: "", wantDropped: true},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, dropped := CleanFileName(tt.input)
			if got != tt.want || dropped != tt.wantDropped {
				t.Errorf("CleanFileName(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, dropped, tt.want, tt.wantDropped)
			}
		})
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	if !errors.Is(&LoadError{Path: "x.csv"}, ErrLoadFailed) {
		t.Error("LoadError should match ErrLoadFailed")
	}
	if !errors.Is(&NotFoundError{ID: "CSCI999"}, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if errors.Is(&ValidationError{Field: "fileName"}, ErrInvalidID) {
		t.Error("only course ID validation should match ErrInvalidID")
	}

	err := &LoadError{Path: "x.csv", Warnings: []string{"Unable to locate file: x.csv"}}
	if err.Error() != "no courses were loaded from x.csv: Unable to locate file: x.csv" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
