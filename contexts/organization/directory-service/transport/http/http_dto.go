package http

type UserResponse struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	TeamID       string `json:"team_id,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

type TeamProfileResponse struct {
	TeamID       string         `json:"team_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	DepartmentID string         `json:"department_id,omitempty"`
	MemberCount  int            `json:"member_count"`
	Leaders      []UserResponse `json:"leaders"`
}

type DepartmentProfileResponse struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	TeamCount    int    `json:"team_count"`
	UserCount    int    `json:"user_count"`
}

type DepartmentListResponse struct {
	Items []DepartmentProfileResponse `json:"items"`
}

type TeamListResponse struct {
	Items []TeamProfileResponse `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
