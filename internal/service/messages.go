package service

// StudentInfo is the wire form of a student.
type StudentInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Courses []string `json:"courses"`
	GPA     float64  `json:"gpa"`
}

// CourseInfo is the wire form of a course.
type CourseInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type AddStudentRequest struct {
	ID   string `json:"id" validate:"identifier"`
	Name string `json:"name" validate:"notblank"`
	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=general math science"`
}

type AddStudentResponse struct {
	// Added is false when the id was already taken; Student then shows the existing record.
	Added   bool        `json:"added"`
	Student StudentInfo `json:"student"`
}

type AddCourseRequest struct {
	Code string `json:"code" validate:"identifier"`
	Name string `json:"name" validate:"notblank"`
	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=general math programming arabic physics history"`
}

type AddCourseResponse struct {
	Added  bool       `json:"added"`
	Course CourseInfo `json:"course"`
}

type RegisterStudentRequest struct {
	StudentID  string `json:"student_id" validate:"identifier"`
	CourseCode string `json:"course_code" validate:"identifier"`
}

type RegisterStudentResponse struct {
	CourseCodes []string `json:"course_codes"`
}

type AddOrEditGradeRequest struct {
	StudentID  string  `json:"student_id" validate:"identifier"`
	CourseCode string  `json:"course_code" validate:"identifier"`
	Score      float64 `json:"score" validate:"score"`
}

type AddOrEditGradeResponse struct {
	GPA float64 `json:"gpa"`
}

type CalculateGPARequest struct {
	StudentID string `json:"student_id" validate:"identifier"`
}

type CalculateGPAResponse struct {
	StudentID string  `json:"student_id"`
	GPA       float64 `json:"gpa"`
}

type GetRegisteredCoursesRequest struct {
	StudentID string `json:"student_id" validate:"identifier"`
}

type GetRegisteredCoursesResponse struct {
	CourseCodes []string `json:"course_codes"`
}

type GetStudentsForCourseRequest struct {
	CourseCode string `json:"course_code" validate:"identifier"`
}

type GetStudentsForCourseResponse struct {
	Students []StudentInfo `json:"students"`
}

type ListStudentsRequest struct{}

type ListStudentsResponse struct {
	Students []StudentInfo `json:"students"`
}

type ListCoursesRequest struct{}

type ListCoursesResponse struct {
	Courses []CourseInfo `json:"courses"`
}

type ImportRecordsRequest struct {
	Content string `json:"content"`
}

// RejectedScore is a Score line the registry refused.
type RejectedScore struct {
	Line       int     `json:"line"`
	StudentID  string  `json:"student_id"`
	CourseCode string  `json:"course_code"`
	Score      float64 `json:"score"`
}

type ImportRecordsResponse struct {
	ImportID string          `json:"import_id"`
	Lines    int             `json:"lines"`
	Records  map[string]int  `json:"records"`
	Ignored  int             `json:"ignored"`
	Rejected []RejectedScore `json:"rejected"`
	Errors   []string        `json:"errors"`
}

type ExportRecordsRequest struct{}

type ExportRecordsResponse struct {
	Content string `json:"content"`
	Scores  int    `json:"scores"`
}

type ExportTranscriptRequest struct{}

type ExportTranscriptResponse struct {
	// Workbook is an XLSX file.
	Workbook []byte `json:"workbook"`
}
