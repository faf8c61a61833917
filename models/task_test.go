package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    TaskStatus
		wantErr bool
	}{
		{`"ToDo"`, StatusToDo, false},
		{`"InProgress"`, StatusInProgress, false},
		{`"Done"`, StatusDone, false},
		{`"todo"`, "", true},
		{`"Archived"`, "", true},
		{`""`, "", true},
		{`3`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got TaskStatus
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Task{Title: "t", Description: "d", DueDate: "2023-12-31", Status: StatusDone})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"00000000-0000-0000-0000-000000000000","title":"t","description":"d","due_date":"2023-12-31","status":"Done"}`,
		string(data))
}
