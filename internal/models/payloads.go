package models

// GameCreate is the request body for creating or fully replacing a game.
// Strings are pointers so that only a missing or null field fails
// "required"; an empty string is a valid value.
type GameCreate struct {
	Title     *string `json:"title" binding:"required"`
	Condition *string `json:"condition" binding:"required"`
	HasBox    bool    `json:"has_box"`
	HasManual bool    `json:"has_manual"`
	ConsoleID uint    `json:"console_id" binding:"required"`
}

func (g GameCreate) Game() Game {
	return Game{
		Title:     deref(g.Title),
		Condition: deref(g.Condition),
		HasBox:    g.HasBox,
		HasManual: g.HasManual,
		ConsoleID: g.ConsoleID,
	}
}

type ConsoleCreate struct {
	Name *string `json:"name" binding:"required"`
}

func (c ConsoleCreate) Console() Console {
	return Console{Name: deref(c.Name)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
