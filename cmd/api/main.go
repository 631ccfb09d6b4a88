package main

import (
	"fmt"
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/config"
	appHTTP "github.com/gajkesari/backoffice-go/internal/handler/http"
	"github.com/gajkesari/backoffice-go/internal/pkg/cron"
	"github.com/gajkesari/backoffice-go/internal/pkg/geo"
	"github.com/gajkesari/backoffice-go/internal/pkg/jwt"
	"github.com/gajkesari/backoffice-go/internal/pkg/sse"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	upstreamRepo "github.com/gajkesari/backoffice-go/internal/repository/upstream"
	approvalService "github.com/gajkesari/backoffice-go/internal/service/approval"
	employeeService "github.com/gajkesari/backoffice-go/internal/service/employee"
	enquiryService "github.com/gajkesari/backoffice-go/internal/service/enquiry"
	salaryService "github.com/gajkesari/backoffice-go/internal/service/salary"
	salesService "github.com/gajkesari/backoffice-go/internal/service/sales"
	travelService "github.com/gajkesari/backoffice-go/internal/service/travel"
	visitService "github.com/gajkesari/backoffice-go/internal/service/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	routingClient := geo.NewRoutingClient(cfg.Routing)
	hub := sse.NewHub()

	salaryRepo := upstreamRepo.NewSalaryRepository(client)
	travelRepo := upstreamRepo.NewTravelRepository(client)
	approvalRepo := upstreamRepo.NewApprovalRepository(client)
	salesRepo := upstreamRepo.NewSalesRepository(client)
	enquiryRepo := upstreamRepo.NewEnquiryRepository(client)
	visitRepo := upstreamRepo.NewVisitRepository(client)
	employeeRepo := upstreamRepo.NewEmployeeRepository(client)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	salarySvc := salaryService.NewService(salaryRepo)
	travelSvc := travelService.NewService(travelRepo, routingClient, hub, cfg.Backfill.MaxConcurrentDays)
	approvalSvc := approvalService.NewService(approvalRepo)
	salesSvc := salesService.NewService(salesRepo)
	enquirySvc := enquiryService.NewService(enquiryRepo)
	visitSvc := visitService.NewService(visitRepo, cfg.Attendance.IncludeSundays)
	employeeSvc := employeeService.NewService(employeeRepo, cfg.Directory.RefreshInterval)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("employee-directory-evict", cfg.Directory.RefreshInterval, employeeSvc.Evict)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Salary:   appHTTP.NewSalaryHandler(salarySvc),
		Travel:   appHTTP.NewTravelHandler(travelSvc, hub, JWTService),
		Approval: appHTTP.NewApprovalHandler(approvalSvc),
		Sales:    appHTTP.NewSalesHandler(salesSvc),
		Enquiry:  appHTTP.NewEnquiryHandler(enquirySvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Visit:    appHTTP.NewVisitHandler(visitSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
