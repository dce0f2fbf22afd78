package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/config"
	appHTTP "github.com/ptcportal/personnel-backend-go/internal/handler/http"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/cron"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/jwt"
	"github.com/ptcportal/personnel-backend-go/internal/repository/postgresql"
	approvalService "github.com/ptcportal/personnel-backend-go/internal/service/approval"
	archiveService "github.com/ptcportal/personnel-backend-go/internal/service/archive"
	attendanceService "github.com/ptcportal/personnel-backend-go/internal/service/attendance"
	exportService "github.com/ptcportal/personnel-backend-go/internal/service/export"
	leaveService "github.com/ptcportal/personnel-backend-go/internal/service/leave"
	personService "github.com/ptcportal/personnel-backend-go/internal/service/person"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	personRepo := postgresql.NewPersonRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	folderRepo := postgresql.NewFolderRepository(db)
	archivedRepo := postgresql.NewArchivedPersonRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	personSvc := personService.NewPersonService(txManager, personRepo, attendanceRepo, leaveRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, personRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, personRepo)
	approvalSvc := approvalService.NewApprovalService(txManager, attendanceRepo, leaveRepo)
	archiveSvc := archiveService.NewArchiveService(txManager, folderRepo, archivedRepo, personRepo)
	exportSvc := exportService.NewExportService(personRepo, attendanceRepo, leaveRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Person:     appHTTP.NewPersonHandler(personSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Approval:   appHTTP.NewApprovalHandler(jwtService, approvalSvc),
		Archive:    appHTTP.NewArchiveHandler(jwtService, archiveSvc),
		Export:     appHTTP.NewExportHandler(exportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewArchiveJobs(archiveSvc).Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
