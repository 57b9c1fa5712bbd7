package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/repository"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// ReportService renders project reports as PDF
type ReportService struct {
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	timeLogRepo repository.TimeLogRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	timeLogRepo repository.TimeLogRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *ReportService {
	return &ReportService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		timeLogRepo: timeLogRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// Report is a rendered document
type Report struct {
	FileName string
	Content  []byte
}

type reportColumn struct {
	title string
	width float64
}

var taskTableColumns = []reportColumn{
	{"Title", 70},
	{"Status", 25},
	{"Priority", 20},
	{"Assignee", 35},
	{"Due", 22},
	{"Hours", 18},
}

// ProjectReport renders a summary of the project's tasks and logged time; project members only
func (s *ReportService) ProjectReport(ctx context.Context, actor Actor, projectID uuid.UUID) (*Report, error) {
	project, err := getProject(ctx, s.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, projectID, actor.ID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListAllByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	counts, err := s.taskRepo.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	taskIDs := make([]uuid.UUID, 0, len(tasks))
	assigneeIDs := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
		if t.AssigneeID != nil {
			assigneeIDs = append(assigneeIDs, *t.AssigneeID)
		}
	}

	minutes, err := s.timeLogRepo.TotalMinutesByTasks(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum time logs: %w", err)
	}
	users, err := s.userRepo.GetByIDs(ctx, assigneeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignees: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	content, err := renderProjectReport(project, tasks, counts, minutes, names, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &Report{
		FileName: fmt.Sprintf("project-%s-report.pdf", project.ID),
		Content:  content,
	}, nil
}

func renderProjectReport(
	project *models.Project,
	tasks []models.Task,
	counts map[models.TaskStatus]int64,
	minutes map[uuid.UUID]int64,
	assignees map[uuid.UUID]string,
	generatedAt time.Time,
) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(project.Name+" report"), false)
	pdf.SetCreator("TrackFlow", false)
	pdf.SetCreationDate(generatedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(project.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", project.Status), "", 1, "L", false, 0, "")
	if project.DueDate != nil {
		pdf.CellFormat(0, 6, "Due: "+project.DueDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	if project.Description != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, tr(project.Description), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Tasks by status", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, status := range models.TaskStatuses {
		pdf.CellFormat(40, 6, string(status), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprint(counts[status]), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Tasks", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range taskTableColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var totalMinutes int64
	for _, t := range tasks {
		title := t.Title
		if t.IsSubtask() {
			title = "  - " + title
		}
		assignee := "-"
		if t.AssigneeID != nil {
			if name, ok := assignees[*t.AssigneeID]; ok {
				assignee = name
			}
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		totalMinutes += minutes[t.ID]

		cells := []string{
			truncate(title, 40),
			string(t.Status),
			string(t.Priority),
			truncate(assignee, 20),
			due,
			formatHours(minutes[t.ID]),
		}
		for i, col := range taskTableColumns {
			pdf.CellFormat(col.width, 6, tr(cells[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Total logged: "+formatHours(totalMinutes)+" h", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatHours(minutes int64) string {
	return fmt.Sprintf("%.1f", float64(minutes)/60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
