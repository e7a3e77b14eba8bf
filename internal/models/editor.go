package models

import "time"

// EditorState is the draft an add/edit/copy action is built from. When
// IncludeEnd is false the draft declines to pick an end time and the
// service applies its default-duration policy instead.
type EditorState struct {
	Description string
	Type        ActivityType
	Start       time.Time
	End         time.Time
	IncludeEnd  bool
	Status      ActivityStatus
}

// EditorStateFrom seeds a draft from an existing activity.
func EditorStateFrom(a Activity) EditorState {
	end := a.StartTime
	if a.EndTime != nil {
		end = *a.EndTime
	}
	return EditorState{
		Description: a.Description,
		Type:        a.Type,
		Start:       a.StartTime,
		End:         end,
		IncludeEnd:  true,
		Status:      a.Status,
	}
}
