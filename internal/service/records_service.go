// Package service exposes the registry's operation set over Connect RPC.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/gradebook/internal/exchange"
	"github.com/mmynk/gradebook/internal/metrics"
	"github.com/mmynk/gradebook/internal/middleware"
	"github.com/mmynk/gradebook/internal/registry"
	"github.com/mmynk/gradebook/internal/report"
	"github.com/mmynk/gradebook/internal/validation"
)

// ErrNotRegistered is returned when a grade is written for a pair that is not registered.
var ErrNotRegistered = errors.New("failed to add/edit grade: the student might not be registered in the specified course")

// RecordsService implements the Connect RecordsService.
// The registry is not safe for concurrent use, so every call holds mu for
// its whole duration.
type RecordsService struct {
	mu         sync.Mutex
	reg        *registry.Registry
	metrics    *metrics.Metrics
	importOpts exchange.Options
}

// NewRecordsService creates a RecordsService over reg.
func NewRecordsService(reg *registry.Registry, m *metrics.Metrics, importOpts exchange.Options) *RecordsService {
	s := &RecordsService{reg: reg, metrics: m, importOpts: importOpts}
	s.updateGauges()
	return s
}

// AddStudent adds a student. An existing id is kept unchanged.
func (s *RecordsService) AddStudent(ctx context.Context, req *connect.Request[AddStudentRequest]) (*connect.Response[AddStudentResponse], error) {
	slog.Info("AddStudent request received",
		"student_id", req.Msg.ID,
		"request_id", middleware.GetRequestID(ctx),
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student := registry.NewStudent(req.Msg.ID, strings.TrimSpace(req.Msg.Name))
	if req.Msg.Kind != "" {
		student.Kind = registry.StudentKind(req.Msg.Kind)
	}
	added := s.reg.AddStudent(student)
	s.updateGauges()

	existing, _ := s.reg.Student(req.Msg.ID)
	slog.Info("AddStudent done", "student_id", req.Msg.ID, "added", added)

	return connect.NewResponse(&AddStudentResponse{
		Added:   added,
		Student: toStudentInfo(existing),
	}), nil
}

// AddCourse adds a course. An existing code is kept unchanged.
func (s *RecordsService) AddCourse(ctx context.Context, req *connect.Request[AddCourseRequest]) (*connect.Response[AddCourseResponse], error) {
	slog.Info("AddCourse request received",
		"course_code", req.Msg.Code,
		"request_id", middleware.GetRequestID(ctx),
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := registry.NewCourse(req.Msg.Code, strings.TrimSpace(req.Msg.Name))
	if req.Msg.Kind != "" {
		course.Kind = registry.CourseKind(req.Msg.Kind)
	}
	added := s.reg.AddCourse(course)
	s.updateGauges()

	existing, _ := s.reg.Course(req.Msg.Code)
	slog.Info("AddCourse done", "course_code", req.Msg.Code, "added", added)

	return connect.NewResponse(&AddCourseResponse{
		Added:  added,
		Course: toCourseInfo(existing),
	}), nil
}

// RegisterStudent registers a student in a course.
func (s *RecordsService) RegisterStudent(ctx context.Context, req *connect.Request[RegisterStudentRequest]) (*connect.Response[RegisterStudentResponse], error) {
	slog.Info("RegisterStudent request received",
		"student_id", req.Msg.StudentID,
		"course_code", req.Msg.CourseCode,
		"request_id", middleware.GetRequestID(ctx),
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.reg.RegisterStudentToCourse(req.Msg.StudentID, req.Msg.CourseCode) {
		return nil, connect.NewError(connect.CodeNotFound,
			fmt.Errorf("student %s or course %s not found", req.Msg.StudentID, req.Msg.CourseCode))
	}

	return connect.NewResponse(&RegisterStudentResponse{
		CourseCodes: s.reg.GetRegisteredCoursesForStudent(req.Msg.StudentID),
	}), nil
}

// AddOrEditGrade records a score for a registered student.
func (s *RecordsService) AddOrEditGrade(ctx context.Context, req *connect.Request[AddOrEditGradeRequest]) (*connect.Response[AddOrEditGradeResponse], error) {
	slog.Info("AddOrEditGrade request received",
		"student_id", req.Msg.StudentID,
		"course_code", req.Msg.CourseCode,
		"request_id", middleware.GetRequestID(ctx),
	)

	if err := validation.Struct(req.Msg); err != nil {
		s.metrics.GradeWrites.WithLabelValues("invalid").Inc()
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.reg.AddOrEditGrade(req.Msg.StudentID, req.Msg.CourseCode, req.Msg.Score) {
		s.metrics.GradeWrites.WithLabelValues("rejected").Inc()
		slog.Warn("AddOrEditGrade rejected", "student_id", req.Msg.StudentID, "course_code", req.Msg.CourseCode)
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNotRegistered)
	}
	s.metrics.GradeWrites.WithLabelValues("recorded").Inc()

	gpa, err := s.reg.CalculateGPA(req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Grade updated",
		"student_id", req.Msg.StudentID,
		"course_code", req.Msg.CourseCode,
		"score", req.Msg.Score,
	)
	return connect.NewResponse(&AddOrEditGradeResponse{GPA: gpa}), nil
}

// CalculateGPA returns a student's GPA.
func (s *RecordsService) CalculateGPA(ctx context.Context, req *connect.Request[CalculateGPARequest]) (*connect.Response[CalculateGPAResponse], error) {
	slog.Info("CalculateGPA request received",
		"student_id", req.Msg.StudentID,
		"request_id", middleware.GetRequestID(ctx),
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gpa, err := s.reg.CalculateGPA(req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&CalculateGPAResponse{StudentID: req.Msg.StudentID, GPA: gpa}), nil
}

// GetRegisteredCourses lists a student's course codes. Unknown students yield an empty list.
func (s *RecordsService) GetRegisteredCourses(ctx context.Context, req *connect.Request[GetRegisteredCoursesRequest]) (*connect.Response[GetRegisteredCoursesResponse], error) {
	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return connect.NewResponse(&GetRegisteredCoursesResponse{
		CourseCodes: s.reg.GetRegisteredCoursesForStudent(req.Msg.StudentID),
	}), nil
}

// GetStudentsForCourse lists the students registered in a course.
func (s *RecordsService) GetStudentsForCourse(ctx context.Context, req *connect.Request[GetStudentsForCourseRequest]) (*connect.Response[GetStudentsForCourseResponse], error) {
	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	students := s.reg.GetStudentsForCourse(req.Msg.CourseCode)
	infos := make([]StudentInfo, len(students))
	for i, st := range students {
		infos[i] = toStudentInfo(st)
	}
	return connect.NewResponse(&GetStudentsForCourseResponse{Students: infos}), nil
}

// ListStudents returns every student.
func (s *RecordsService) ListStudents(ctx context.Context, req *connect.Request[ListStudentsRequest]) (*connect.Response[ListStudentsResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	students := s.reg.Students()
	infos := make([]StudentInfo, len(students))
	for i, st := range students {
		infos[i] = toStudentInfo(st)
	}
	slog.Info("ListStudents successful", "count", len(infos))
	return connect.NewResponse(&ListStudentsResponse{Students: infos}), nil
}

// ListCourses returns every course.
func (s *RecordsService) ListCourses(ctx context.Context, req *connect.Request[ListCoursesRequest]) (*connect.Response[ListCoursesResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := s.reg.Courses()
	infos := make([]CourseInfo, len(courses))
	for i, c := range courses {
		infos[i] = toCourseInfo(c)
	}
	return connect.NewResponse(&ListCoursesResponse{Courses: infos}), nil
}

// ImportRecords applies a records file. Malformed lines are reported in the
// response, not as an RPC error.
func (s *RecordsService) ImportRecords(ctx context.Context, req *connect.Request[ImportRecordsRequest]) (*connect.Response[ImportRecordsResponse], error) {
	slog.Info("ImportRecords request received",
		"bytes", len(req.Msg.Content),
		"request_id", middleware.GetRequestID(ctx),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	rep, err := exchange.Import(strings.NewReader(req.Msg.Content), s.reg, s.importOpts)
	s.updateGauges()
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	applied := 0
	for _, n := range rep.Records {
		applied += n
	}
	s.metrics.ImportLines.WithLabelValues("applied").Add(float64(applied))
	s.metrics.ImportLines.WithLabelValues("rejected").Add(float64(len(rep.Rejected)))
	s.metrics.ImportLines.WithLabelValues("malformed").Add(float64(len(rep.Errors)))
	s.metrics.ImportLines.WithLabelValues("ignored").Add(float64(rep.Ignored))

	resp := &ImportRecordsResponse{
		ImportID: rep.ID,
		Lines:    rep.Lines,
		Records:  rep.Records,
		Ignored:  rep.Ignored,
		Rejected: make([]RejectedScore, len(rep.Rejected)),
		Errors:   make([]string, len(rep.Errors)),
	}
	for i, r := range rep.Rejected {
		resp.Rejected[i] = RejectedScore{Line: r.Line, StudentID: r.StudentID, CourseCode: r.CourseCode, Score: r.Score}
	}
	for i, e := range rep.Errors {
		resp.Errors[i] = e.Error()
	}
	return connect.NewResponse(resp), nil
}

// ExportRecords renders every recorded score as Score lines.
func (s *RecordsService) ExportRecords(ctx context.Context, req *connect.Request[ExportRecordsRequest]) (*connect.Response[ExportRecordsResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	n, err := exchange.Export(&buf, s.reg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	slog.Info("ExportRecords successful", "scores", n, "request_id", middleware.GetRequestID(ctx))
	return connect.NewResponse(&ExportRecordsResponse{Content: buf.String(), Scores: n}), nil
}

// ExportTranscript renders the registry as an XLSX workbook.
func (s *RecordsService) ExportTranscript(ctx context.Context, req *connect.Request[ExportTranscriptRequest]) (*connect.Response[ExportTranscriptResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := report.Write(&buf, s.reg); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&ExportTranscriptResponse{Workbook: buf.Bytes()}), nil
}

// updateGauges must be called with mu held.
func (s *RecordsService) updateGauges() {
	s.metrics.Students.Set(float64(len(s.reg.Students())))
	s.metrics.Courses.Set(float64(len(s.reg.Courses())))
}

func toStudentInfo(st *registry.Student) StudentInfo {
	courses := st.Courses()
	codes := make([]string, len(courses))
	for i, c := range courses {
		codes[i] = c.Code()
	}
	return StudentInfo{
		ID:      st.ID(),
		Name:    st.Name,
		Kind:    string(st.Kind),
		Courses: codes,
		GPA:     st.GPA(),
	}
}

func toCourseInfo(c *registry.Course) CourseInfo {
	return CourseInfo{Code: c.Code(), Name: c.Name, Kind: string(c.Kind)}
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, registry.ErrStudentNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
