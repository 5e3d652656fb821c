package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// RecordsServiceName is the fully-qualified name of the RecordsService.
const RecordsServiceName = "gradebook.v1.RecordsService"

// Procedure paths of the RecordsService.
const (
	AddStudentProcedure           = "/" + RecordsServiceName + "/AddStudent"
	AddCourseProcedure            = "/" + RecordsServiceName + "/AddCourse"
	RegisterStudentProcedure      = "/" + RecordsServiceName + "/RegisterStudent"
	AddOrEditGradeProcedure       = "/" + RecordsServiceName + "/AddOrEditGrade"
	CalculateGPAProcedure         = "/" + RecordsServiceName + "/CalculateGPA"
	GetRegisteredCoursesProcedure = "/" + RecordsServiceName + "/GetRegisteredCourses"
	GetStudentsForCourseProcedure = "/" + RecordsServiceName + "/GetStudentsForCourse"
	ListStudentsProcedure         = "/" + RecordsServiceName + "/ListStudents"
	ListCoursesProcedure          = "/" + RecordsServiceName + "/ListCourses"
	ImportRecordsProcedure        = "/" + RecordsServiceName + "/ImportRecords"
	ExportRecordsProcedure        = "/" + RecordsServiceName + "/ExportRecords"
	ExportTranscriptProcedure     = "/" + RecordsServiceName + "/ExportTranscript"
)

// NewRecordsServiceHandler builds an HTTP handler for every RecordsService
// procedure. It returns the path to mount it on.
func NewRecordsServiceHandler(svc *RecordsService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(AddStudentProcedure, connect.NewUnaryHandler(AddStudentProcedure, svc.AddStudent, opts...))
	mux.Handle(AddCourseProcedure, connect.NewUnaryHandler(AddCourseProcedure, svc.AddCourse, opts...))
	mux.Handle(RegisterStudentProcedure, connect.NewUnaryHandler(RegisterStudentProcedure, svc.RegisterStudent, opts...))
	mux.Handle(AddOrEditGradeProcedure, connect.NewUnaryHandler(AddOrEditGradeProcedure, svc.AddOrEditGrade, opts...))
	mux.Handle(CalculateGPAProcedure, connect.NewUnaryHandler(CalculateGPAProcedure, svc.CalculateGPA, opts...))
	mux.Handle(GetRegisteredCoursesProcedure, connect.NewUnaryHandler(GetRegisteredCoursesProcedure, svc.GetRegisteredCourses, opts...))
	mux.Handle(GetStudentsForCourseProcedure, connect.NewUnaryHandler(GetStudentsForCourseProcedure, svc.GetStudentsForCourse, opts...))
	mux.Handle(ListStudentsProcedure, connect.NewUnaryHandler(ListStudentsProcedure, svc.ListStudents, opts...))
	mux.Handle(ListCoursesProcedure, connect.NewUnaryHandler(ListCoursesProcedure, svc.ListCourses, opts...))
	mux.Handle(ImportRecordsProcedure, connect.NewUnaryHandler(ImportRecordsProcedure, svc.ImportRecords, opts...))
	mux.Handle(ExportRecordsProcedure, connect.NewUnaryHandler(ExportRecordsProcedure, svc.ExportRecords, opts...))
	mux.Handle(ExportTranscriptProcedure, connect.NewUnaryHandler(ExportTranscriptProcedure, svc.ExportTranscript, opts...))

	return "/" + RecordsServiceName + "/", mux
}

// RecordsServiceClient calls a remote RecordsService.
type RecordsServiceClient struct {
	addStudent           *connect.Client[AddStudentRequest, AddStudentResponse]
	addCourse            *connect.Client[AddCourseRequest, AddCourseResponse]
	registerStudent      *connect.Client[RegisterStudentRequest, RegisterStudentResponse]
	addOrEditGrade       *connect.Client[AddOrEditGradeRequest, AddOrEditGradeResponse]
	calculateGPA         *connect.Client[CalculateGPARequest, CalculateGPAResponse]
	getRegisteredCourses *connect.Client[GetRegisteredCoursesRequest, GetRegisteredCoursesResponse]
	getStudentsForCourse *connect.Client[GetStudentsForCourseRequest, GetStudentsForCourseResponse]
	listStudents         *connect.Client[ListStudentsRequest, ListStudentsResponse]
	listCourses          *connect.Client[ListCoursesRequest, ListCoursesResponse]
	importRecords        *connect.Client[ImportRecordsRequest, ImportRecordsResponse]
	exportRecords        *connect.Client[ExportRecordsRequest, ExportRecordsResponse]
	exportTranscript     *connect.Client[ExportTranscriptRequest, ExportTranscriptResponse]
}

// NewRecordsServiceClient creates a client for the service at baseURL.
func NewRecordsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RecordsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &RecordsServiceClient{
		addStudent:           connect.NewClient[AddStudentRequest, AddStudentResponse](httpClient, baseURL+AddStudentProcedure, opts...),
		addCourse:            connect.NewClient[AddCourseRequest, AddCourseResponse](httpClient, baseURL+AddCourseProcedure, opts...),
		registerStudent:      connect.NewClient[RegisterStudentRequest, RegisterStudentResponse](httpClient, baseURL+RegisterStudentProcedure, opts...),
		addOrEditGrade:       connect.NewClient[AddOrEditGradeRequest, AddOrEditGradeResponse](httpClient, baseURL+AddOrEditGradeProcedure, opts...),
		calculateGPA:         connect.NewClient[CalculateGPARequest, CalculateGPAResponse](httpClient, baseURL+CalculateGPAProcedure, opts...),
		getRegisteredCourses: connect.NewClient[GetRegisteredCoursesRequest, GetRegisteredCoursesResponse](httpClient, baseURL+GetRegisteredCoursesProcedure, opts...),
		getStudentsForCourse: connect.NewClient[GetStudentsForCourseRequest, GetStudentsForCourseResponse](httpClient, baseURL+GetStudentsForCourseProcedure, opts...),
		listStudents:         connect.NewClient[ListStudentsRequest, ListStudentsResponse](httpClient, baseURL+ListStudentsProcedure, opts...),
		listCourses:          connect.NewClient[ListCoursesRequest, ListCoursesResponse](httpClient, baseURL+ListCoursesProcedure, opts...),
		importRecords:        connect.NewClient[ImportRecordsRequest, ImportRecordsResponse](httpClient, baseURL+ImportRecordsProcedure, opts...),
		exportRecords:        connect.NewClient[ExportRecordsRequest, ExportRecordsResponse](httpClient, baseURL+ExportRecordsProcedure, opts...),
		exportTranscript:     connect.NewClient[ExportTranscriptRequest, ExportTranscriptResponse](httpClient, baseURL+ExportTranscriptProcedure, opts...),
	}
}

func (c *RecordsServiceClient) AddStudent(ctx context.Context, req *connect.Request[AddStudentRequest]) (*connect.Response[AddStudentResponse], error) {
	return c.addStudent.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) AddCourse(ctx context.Context, req *connect.Request[AddCourseRequest]) (*connect.Response[AddCourseResponse], error) {
	return c.addCourse.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) RegisterStudent(ctx context.Context, req *connect.Request[RegisterStudentRequest]) (*connect.Response[RegisterStudentResponse], error) {
	return c.registerStudent.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) AddOrEditGrade(ctx context.Context, req *connect.Request[AddOrEditGradeRequest]) (*connect.Response[AddOrEditGradeResponse], error) {
	return c.addOrEditGrade.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) CalculateGPA(ctx context.Context, req *connect.Request[CalculateGPARequest]) (*connect.Response[CalculateGPAResponse], error) {
	return c.calculateGPA.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) GetRegisteredCourses(ctx context.Context, req *connect.Request[GetRegisteredCoursesRequest]) (*connect.Response[GetRegisteredCoursesResponse], error) {
	return c.getRegisteredCourses.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) GetStudentsForCourse(ctx context.Context, req *connect.Request[GetStudentsForCourseRequest]) (*connect.Response[GetStudentsForCourseResponse], error) {
	return c.getStudentsForCourse.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) ListStudents(ctx context.Context, req *connect.Request[ListStudentsRequest]) (*connect.Response[ListStudentsResponse], error) {
	return c.listStudents.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) ListCourses(ctx context.Context, req *connect.Request[ListCoursesRequest]) (*connect.Response[ListCoursesResponse], error) {
	return c.listCourses.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) ImportRecords(ctx context.Context, req *connect.Request[ImportRecordsRequest]) (*connect.Response[ImportRecordsResponse], error) {
	return c.importRecords.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) ExportRecords(ctx context.Context, req *connect.Request[ExportRecordsRequest]) (*connect.Response[ExportRecordsResponse], error) {
	return c.exportRecords.CallUnary(ctx, req)
}

func (c *RecordsServiceClient) ExportTranscript(ctx context.Context, req *connect.Request[ExportTranscriptRequest]) (*connect.Response[ExportTranscriptResponse], error) {
	return c.exportTranscript.CallUnary(ctx, req)
}
