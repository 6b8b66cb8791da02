package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"customer-manager/internal/application/form"
	"customer-manager/internal/application/ports"
	domain "customer-manager/internal/domain/customer"
	"customer-manager/internal/infrastructure/jwt"
	"customer-manager/internal/infrastructure/metrics"
	"customer-manager/internal/infrastructure/mq"
	"customer-manager/internal/infrastructure/remote"
	"customer-manager/internal/interface/api/rest/dto/customer"
	"customer-manager/internal/interface/api/rest/middleware"
	"customer-manager/internal/interface/api/rest/validator"
	"customer-manager/internal/interface/screens"
)

const errInvalidID = "customer_id must be a positive integer"

// CustomerController drives the screens for thin clients. Every request
// builds fresh screens; nothing is shared between requests.
type CustomerController struct {
	deps     screens.Deps
	events   ports.EventPublisher
	mCounter *prometheus.CounterVec
	logger   *zap.Logger
}

// NewCustomerController registers the customer routes. Mutations require a
// write-scoped token when jwtService is not nil.
func NewCustomerController(
	r *gin.Engine,
	deps screens.Deps,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *CustomerController {
	if deps.Rules == nil {
		deps.Rules = form.NewRules(nil)
	}
	if deps.Logger == nil {
		deps.Logger = logger
	}

	cc := &CustomerController{
		deps:     deps,
		events:   events,
		mCounter: mCounter,
		logger:   logger,
	}

	var guard gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if jwtService != nil {
		guard = middleware.AuthMiddleware(jwtService, jwt.ScopeWrite)
	}

	r.GET(RouteCustomers, cc.ListHandler)
	r.GET(RouteCustomer, cc.DetailHandler)
	r.POST(RouteCustomerValidate, cc.ValidateHandler)
	r.POST(RouteCustomers, guard, cc.CreateHandler)
	r.PUT(RouteCustomer, guard, cc.UpdateHandler)
	r.DELETE(RouteCustomer, guard, cc.DeleteHandler)

	return cc
}

func (cc *CustomerController) ListHandler(c *gin.Context) {
	s := screens.NewListScreen(cc.deps, &screens.Recorder{})

	st := s.Load(c.Request.Context())
	if st.Phase == screens.Failed {
		cc.remoteFailure(c, st)
		return
	}

	c.JSON(http.StatusOK, customer.ListView{
		State: st.Phase.String(),
		Data:  customer.ToResponses(s.Customers(), cc.deps.Rules.Now()),
	})
}

func (cc *CustomerController) DetailHandler(c *gin.Context) {
	s, ok := cc.loadDetail(c, &screens.Recorder{})
	if !ok {
		return
	}

	cust := *s.Customer()
	decision, err := form.CheckDeletion(cust, cc.deps.Rules.Now())

	c.JSON(http.StatusOK, customer.DetailView{
		State:     s.State().Phase.String(),
		Customer:  customer.ToResponse(cust, cc.deps.Rules.Now()),
		CanDelete: err == nil && decision.Allowed,
	})
}

func (cc *CustomerController) ValidateHandler(c *gin.Context) {
	var req customer.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	f, msg := validator.ParseField(req.Field, customer.ParseMode(req.Mode))
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, customer.ValidateView{
		Field: f.String(),
		Error: cc.deps.Rules.Validate(f, req.Value),
	})
}

func (cc *CustomerController) CreateHandler(c *gin.Context) {
	var req customer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	var refreshed bool
	nav := &screens.Recorder{}
	s := screens.NewFormScreen(cc.deps, nav, screens.Params{
		OnRefresh: func(context.Context) { refreshed = true },
	})

	cc.submit(c, s, req, nav, &refreshed, http.StatusCreated)
}

func (cc *CustomerController) UpdateHandler(c *gin.Context) {
	var req customer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	nav := &screens.Recorder{}
	detail, ok := cc.loadDetail(c, nav)
	if !ok {
		return
	}

	// The detail screen hands the fetched record to the edit form.
	detail.Edit()
	_, p := nav.Last()

	var refreshed bool
	p.OnRefresh = func(context.Context) { refreshed = true }
	s := screens.NewFormScreen(cc.deps, nav, p)

	cc.submit(c, s, req, nav, &refreshed, http.StatusOK)
}

func (cc *CustomerController) DeleteHandler(c *gin.Context) {
	nav := &screens.Recorder{}
	s, ok := cc.loadDetail(c, nav)
	if !ok {
		return
	}

	switch s.Delete(c.Request.Context()) {
	case screens.DeleteRejected:
		cc.count(metrics.DeleteRejectedTotal)
		c.JSON(http.StatusConflict, customer.DeleteRejectedView{
			Error:           screens.MsgCannotDelete,
			ShouldNotDelete: s.ShouldNotDelete(),
			Age:             s.Age(),
		})
	case screens.DeleteSkipped:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": form.ErrBirthDateUnknown.Error()})
	case screens.DeleteFailed:
		cc.remoteFailure(c, s.State())
	case screens.Deleted:
		cc.count(metrics.CustomerDeletedTotal)
		cc.publish(http.MethodDelete, *s.Customer())
		c.Status(http.StatusNoContent)
	}
}

// loadDetail writes the error response itself when it returns false.
func (cc *CustomerController) loadDetail(c *gin.Context, nav screens.Navigator) (*screens.DetailScreen, bool) {
	id, ok := validator.ParseID(c.Param("customer_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return nil, false
	}

	s := screens.NewDetailScreen(cc.deps, nav, screens.Params{CustomerID: id})
	if st := s.Load(c.Request.Context()); st.Phase == screens.Failed {
		if st.Message == screens.MsgNotFound || remoteNotFound(s.Err()) {
			c.JSON(http.StatusNotFound, gin.H{"error": st.Message})
			return nil, false
		}
		cc.remoteFailure(c, st)
		return nil, false
	}

	return s, true
}

func (cc *CustomerController) submit(
	c *gin.Context,
	s *screens.FormScreen,
	req customer.Request,
	nav *screens.Recorder,
	refreshed *bool,
	okStatus int,
) {
	for _, f := range s.Form().Fields() {
		if _, err := s.Set(f, req.Value(f)); err != nil {
			cc.logger.Error("form Set() error", zap.Error(err))
		}
	}

	res := s.Submit(c.Request.Context())

	switch r := res.(type) {
	case form.Rejected:
		cc.count(metrics.FormRejectedTotal)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid form",
			"details": r.Errors.Map(),
		})
	case form.Accepted:
		if st := s.State(); st.Phase == screens.Failed {
			cc.remoteFailure(c, st)
			return
		}

		method, counter := http.MethodPost, metrics.CustomerCreatedTotal
		if r.Mode == form.ModeEdit {
			method, counter = http.MethodPut, metrics.CustomerUpdatedTotal
		}
		cc.count(counter)
		cc.publish(method, r.Customer)

		next, _ := nav.Last()
		c.JSON(okStatus, customer.SubmitView{
			Mode: r.Mode.String(),
			Nav:  customer.Nav{Next: string(next), Refresh: *refreshed},
		})
	}
}

func remoteNotFound(err error) bool {
	var se *remote.StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// remoteFailure reports every transport error the same way.
func (cc *CustomerController) remoteFailure(c *gin.Context, st screens.State) {
	cc.count(metrics.RemoteFailuresTotal)
	c.JSON(http.StatusBadGateway, gin.H{"error": st.Message})
}

func (cc *CustomerController) publish(method string, cust domain.Customer) {
	if cc.events == nil {
		return
	}
	cc.events.Publish(mq.NewEvent(method, customer.ToResponse(cust, cc.deps.Rules.Now())))
}

func (cc *CustomerController) count(label string) {
	if cc.mCounter != nil {
		cc.mCounter.WithLabelValues(label).Inc()
	}
}
