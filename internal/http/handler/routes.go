package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/service"
	"ubuntuhub/internal/storage"
)

// Services bundles the use cases the routes dispatch to.
type Services struct {
	Organizations service.OrganizationService
	Facilities    service.FacilityService
	Bookings      service.BookingService
	Polls         service.PollService
	Volunteers    service.VolunteerService
	Campaigns     service.CampaignService
	Events        service.EventService
	Documents     service.DocumentService
	Businesses    service.BusinessService
	Groups        service.GroupService
	Memberships   service.MembershipPlanService
}

// RegisterRoutes attaches the health probes at the root and the JSON API under /api/v1.
func RegisterRoutes(app *fiber.App, db *sql.DB, store storage.Storage, svc Services) {
	app.Get("/health", HealthCheck(db, store))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1", middleware.UserID(RejectUserID))

	api.Post("/organizations", CreateOrganization(svc.Organizations))
	api.Get("/organizations", ListOrganizations(svc.Organizations))
	api.Get("/organizations/:id", GetOrganization(svc.Organizations))
	api.Put("/organizations/:id", UpdateOrganization(svc.Organizations))
	api.Delete("/organizations/:id", DeleteOrganization(svc.Organizations))

	api.Post("/organizations/:id/facilities", CreateFacility(svc.Facilities))
	api.Get("/organizations/:id/facilities", ListFacilities(svc.Facilities))
	api.Post("/organizations/:id/events", CreateEvent(svc.Events))
	api.Get("/organizations/:id/events", ListEvents(svc.Events))
	api.Post("/organizations/:id/campaigns", CreateCampaign(svc.Campaigns))
	api.Get("/organizations/:id/campaigns", ListCampaigns(svc.Campaigns))
	api.Post("/organizations/:id/polls", CreatePoll(svc.Polls))
	api.Get("/organizations/:id/polls", ListPolls(svc.Polls))
	api.Post("/organizations/:id/volunteer-opportunities", CreateOpportunity(svc.Volunteers))
	api.Get("/organizations/:id/volunteer-opportunities", ListOpportunities(svc.Volunteers))
	api.Post("/organizations/:id/businesses", CreateBusiness(svc.Businesses))
	api.Get("/organizations/:id/businesses", ListBusinesses(svc.Businesses))
	api.Post("/organizations/:id/groups", CreateGroup(svc.Groups))
	api.Get("/organizations/:id/groups", ListGroups(svc.Groups))
	api.Post("/organizations/:id/membership-plans", CreateMembershipPlan(svc.Memberships))
	api.Get("/organizations/:id/membership-plans", ListMembershipPlans(svc.Memberships))

	api.Get("/facilities/:id", GetFacility(svc.Facilities))
	api.Get("/facilities/:id/availability", CheckAvailability(svc.Bookings))
	api.Get("/facilities/:id/bookings", ListBookings(svc.Bookings))
	api.Post("/facilities/:id/bookings", CreateBooking(svc.Bookings))
	api.Post("/bookings/:id/cancel", CancelBooking(svc.Bookings))

	api.Get("/polls/:id", GetPoll(svc.Polls))
	api.Post("/polls/:id/votes", Vote(svc.Polls))

	api.Get("/volunteer-opportunities/:id", GetOpportunity(svc.Volunteers))
	api.Post("/volunteer-opportunities/:id/signup", SignUpVolunteer(svc.Volunteers))
	api.Delete("/volunteer-opportunities/:id/signup", CancelVolunteer(svc.Volunteers))

	api.Get("/events/:id", GetEvent(svc.Events))
	api.Post("/events/:id/registration", RegisterForEvent(svc.Events))
	api.Delete("/events/:id/registration", UnregisterFromEvent(svc.Events))

	api.Get("/campaigns/:id", GetCampaign(svc.Campaigns))
	api.Get("/campaigns/:id/donations", ListDonations(svc.Campaigns))
	api.Post("/campaigns/:id/donations", Donate(svc.Campaigns))

	api.Get("/businesses/:id", GetBusiness(svc.Businesses))
	api.Put("/businesses/:id", UpdateBusiness(svc.Businesses))
	api.Delete("/businesses/:id", DeleteBusiness(svc.Businesses))
	api.Post("/businesses/:id/cards", AddBusinessCard(svc.Businesses))
	api.Get("/businesses/:id/cards", ListBusinessCards(svc.Businesses))
	api.Delete("/business-cards/:id", DeleteBusinessCard(svc.Businesses))

	api.Get("/groups/:id", GetGroup(svc.Groups))
	api.Put("/groups/:id", UpdateGroup(svc.Groups))
	api.Delete("/groups/:id", DeleteGroup(svc.Groups))

	api.Get("/membership-plans/:id", GetMembershipPlan(svc.Memberships))
	api.Put("/membership-plans/:id", UpdateMembershipPlan(svc.Memberships))
	api.Delete("/membership-plans/:id", DeleteMembershipPlan(svc.Memberships))

	api.Get("/documents", ListDocuments(svc.Documents))
	api.Post("/documents", UploadDocument(svc.Documents))
	api.Get("/documents/:id", GetDocument(svc.Documents))
	api.Delete("/documents/:id", DeleteDocument(svc.Documents))
	api.Get("/documents/:id/download", DownloadDocument(svc.Documents))
}
