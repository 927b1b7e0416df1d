package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/categories"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :( Try /help"
	helloMessage          = "Hello! I keep track of your expenses."
	loveToTalkMessage     = "I would love to talk about it more! Try /help"
	noExpensesMessage     = "You have no expenses yet"
	noCategoriesMessage   = "You have no categories yet"
	loginFirstMessage     = "Please /login or /signup first"
	alreadySignedIn       = "You are already signed in"
	loadingMessage        = "Still loading your session, try again in a moment"

	incorrectUsageMessage   = "That is an incorrect command usage"
	incorrectExpenseMessage = "Your expense amount is incorrect"
	incorrectDateMessage    = "The date is incorrect. Should be yyyy-mm-dd"
	unknownCategoryMessage  = "There is no such category, see /categories"
	unknownExpenseMessage   = "There is no such expense, see /list"
	authFailedMessage       = "Could not sign you in"
	loadCategoriesMessage   = "Failed to load categories"

	savedMessage       = "Expense saved"
	updatedMessage     = "Expense updated"
	deletedMessage     = "Expense deleted"
	signedInMessage    = "Welcome, %s"
	signedOutMessage   = "Signed out"
	passwordMessage    = "Password updated"
	resetSentMessage   = "If the address is registered, a reset link is on its way"
	batchResultMessage = "Saved %d, failed %d"
)

const helpMessage = `/signup <email> <password>
/login <email> <password>
/logout
/password <new password>
/reset <email>
/expense <category> <amount> [yyyy-mm-dd] [note]
/batch <category> <amount> [yyyy-mm-dd]; <category> <amount> ...
/edit <id> <amount> [yyyy-mm-dd]
/delete <id>
/list
/report [day|week|month]
/breakdown [yyyy-mm-dd yyyy-mm-dd]
/trend [year|all]
/categories`

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	signUpCommand     = "/signup"
	loginCommand      = "/login"
	logoutCommand     = "/logout"
	passwordCommand   = "/password"
	resetCommand      = "/reset"
	expenseCommand    = "/expense"
	batchCommand      = "/batch"
	editCommand       = "/edit"
	deleteCommand     = "/delete"
	listCommand       = "/list"
	reportCommand     = "/report"
	breakdownCommand  = "/breakdown"
	trendCommand      = "/trend"
	categoriesCommand = "/categories"
)

var knownCommands = map[string]struct{}{
	startCommand: {}, helpCommand: {}, signUpCommand: {}, loginCommand: {}, logoutCommand: {},
	passwordCommand: {}, resetCommand: {}, expenseCommand: {}, batchCommand: {}, editCommand: {},
	deleteCommand: {}, listCommand: {}, reportCommand: {}, breakdownCommand: {}, trendCommand: {},
	categoriesCommand: {},
}

type authGuard interface {
	Navigate(ctx context.Context, path string) (auth.Decision, error)
	CurrentUser() *session.User
	SignUp(ctx context.Context, email, password string) (*session.Session, error)
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	SignOut(ctx context.Context) error
	UpdatePassword(ctx context.Context, password string) (*session.User, error)
	ResetPasswordForEmail(ctx context.Context, email string) error
}

type expenseService interface {
	Save(ctx context.Context, e expense.Expense, skipSignal bool) (*expense.Expense, error)
	BatchSave(ctx context.Context, items []expense.Expense) (expenses.BatchResult, error)
	Update(ctx context.Context, e expense.Expense) (*expense.Expense, error)
	Delete(ctx context.Context, id string) error
	LoadAll(ctx context.Context) ([]expense.Expense, error)
	GetCategoryBreakdown(ctx context.Context, startDate, endDate string) ([]expense.CategoryBreakdown, error)
	GetMonthlyTrend(ctx context.Context, year int) ([]expense.MonthlyTrend, error)
	GetYearlyTrend(ctx context.Context) ([]expense.YearlyTrend, error)
}

type categoryTree interface {
	Tree(ctx context.Context, userID string) (*categories.Catalog, error)
}

type summaries interface {
	Summary(ctx context.Context, p reports.Period) (reports.Summary, error)
}

type notifier interface {
	ShowSuccess(message string) string
	ShowError(message string) string
	ShowInfo(message string) string
}

// Deps are the models a console session talks to.
type Deps struct {
	Guard      authGuard
	Expenses   expenseService
	Categories categoryTree
	Dashboard  summaries
	Notifier   notifier
	// Now is the current time in the user's timezone.
	Now func() time.Time
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	deps        Deps
}

func newHandler(deps Deps) *HandlerService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	res := &HandlerService{deps: deps}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[signUpCommand] = s.handleSignUp
	m[loginCommand] = s.handleLogin
	m[logoutCommand] = s.handleLogout
	m[passwordCommand] = s.handlePassword
	m[resetCommand] = s.handleReset
	m[expenseCommand] = s.requireUser(s.handleExpense)
	m[batchCommand] = s.requireUser(s.handleBatch)
	m[editCommand] = s.requireUser(s.handleEdit)
	m[deleteCommand] = s.requireUser(s.handleDelete)
	m[listCommand] = s.requireUser(s.handleList)
	m[categoriesCommand] = s.requireUser(s.handleCategories)
	m[reportCommand] = s.requireCharts(s.handleReport)
	m[breakdownCommand] = s.requireCharts(s.handleBreakdown)
	m[trendCommand] = s.requireCharts(s.handleTrend)

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

// guarded runs next only when the route guard allows navigating to path.
func (s *HandlerService) guarded(path string, next handler) handler {
	return func(ctx context.Context, arg string) (string, error) {
		decision, err := s.deps.Guard.Navigate(ctx, path)
		if err != nil {
			return loadingMessage, errors.Wrap(err, "navigate")
		}
		switch {
		case decision.Verdict == auth.Defer:
			return loadingMessage, nil
		case decision.Verdict == auth.Redirect && decision.Target == auth.PathLogin:
			return loginFirstMessage, nil
		}
		return next(ctx, arg)
	}
}

func (s *HandlerService) requireUser(next handler) handler {
	return s.guarded(auth.PathHome, next)
}

func (s *HandlerService) requireCharts(next handler) handler {
	return s.guarded(auth.PathCharts, next)
}

func (s *HandlerService) handleStart(ctx context.Context, _ string) (string, error) {
	decision, err := s.deps.Guard.Navigate(ctx, auth.PathRoot)
	if err != nil {
		return "", errors.Wrap(err, "handle start")
	}
	// the root is an alias of home, which sends anonymous users to the login screen
	if decision.Target == auth.PathHome {
		decision, err = s.deps.Guard.Navigate(ctx, auth.PathHome)
		if err != nil {
			return "", errors.Wrap(err, "handle start")
		}
	}
	if decision.Target == auth.PathLogin {
		return helloMessage + "\n" + loginFirstMessage, nil
	}
	return helloMessage + "\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(context.Context, string) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) credentials(ctx context.Context, arg string) (email, password string, msg string, ok bool) {
	decision, err := s.deps.Guard.Navigate(ctx, auth.PathLogin)
	if err == nil && decision.Verdict == auth.Redirect {
		return "", "", alreadySignedIn, false
	}
	args := strings.Fields(arg)
	if len(args) != 2 {
		return "", "", incorrectUsageMessage, false
	}
	return args[0], args[1], "", true
}

func (s *HandlerService) handleSignUp(ctx context.Context, arg string) (string, error) {
	email, password, msg, ok := s.credentials(ctx, arg)
	if !ok {
		return msg, nil
	}
	sess, err := s.deps.Guard.SignUp(ctx, email, password)
	if err != nil {
		return authFailedMessage, errors.Wrap(err, "handle signup")
	}
	s.deps.Notifier.ShowSuccess(fmt.Sprintf(signedInMessage, sess.User.Email))
	return "", nil
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string) (string, error) {
	email, password, msg, ok := s.credentials(ctx, arg)
	if !ok {
		return msg, nil
	}
	sess, err := s.deps.Guard.SignIn(ctx, email, password)
	if err != nil {
		return authFailedMessage, errors.Wrap(err, "handle login")
	}
	s.deps.Notifier.ShowSuccess(fmt.Sprintf(signedInMessage, sess.User.Email))
	return "", nil
}

func (s *HandlerService) handleLogout(ctx context.Context, _ string) (string, error) {
	if err := s.deps.Guard.SignOut(ctx); err != nil {
		return "", errors.Wrap(err, "handle logout")
	}
	s.deps.Notifier.ShowInfo(signedOutMessage)
	return "", nil
}

func (s *HandlerService) handlePassword(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		return incorrectUsageMessage, nil
	}
	if _, err := s.deps.Guard.UpdatePassword(ctx, arg); err != nil {
		if errors.Is(err, auth.ErrNotSignedIn) {
			return loginFirstMessage, nil
		}
		return "", errors.Wrap(err, "handle password")
	}
	s.deps.Notifier.ShowSuccess(passwordMessage)
	return "", nil
}

func (s *HandlerService) handleReset(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		return incorrectUsageMessage, nil
	}
	if err := s.deps.Guard.ResetPasswordForEmail(ctx, arg); err != nil {
		return "", errors.Wrap(err, "handle reset")
	}
	s.deps.Notifier.ShowInfo(resetSentMessage)
	return "", nil
}

func (s *HandlerService) catalog(ctx context.Context) (*categories.Catalog, error) {
	user := s.deps.Guard.CurrentUser()
	if user == nil {
		return nil, auth.ErrNotSignedIn
	}
	catalog, err := s.deps.Categories.Tree(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load categories")
	}
	return catalog, nil
}

// parseExpense reads "<category> <amount> [yyyy-mm-dd] [note]".
func (s *HandlerService) parseExpense(catalog *categories.Catalog, arg string) (expense.Expense, string, bool) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return expense.Expense{}, incorrectUsageMessage, false
	}
	category, ok := catalog.ByName(args[0])
	if !ok {
		return expense.Expense{}, unknownCategoryMessage, false
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil || amount.IsNegative() {
		return expense.Expense{}, incorrectExpenseMessage, false
	}
	date := expense.FormatDate(s.deps.Now())
	rest := args[2:]
	if len(rest) > 0 {
		if _, err = time.Parse(expense.DateLayout, rest[0]); err == nil {
			date, rest = rest[0], rest[1:]
		}
	}
	return expense.New(amount, category.ID, date, strings.Join(rest, " ")), "", true
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string) (string, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return loadCategoriesMessage, err
	}
	e, msg, ok := s.parseExpense(catalog, arg)
	if !ok {
		return msg, nil
	}
	if _, err = s.deps.Expenses.Save(ctx, e, false); err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle expense")
	}
	s.deps.Notifier.ShowSuccess(savedMessage)
	return "", nil
}

func (s *HandlerService) handleBatch(ctx context.Context, arg string) (string, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return loadCategoriesMessage, err
	}
	var items []expense.Expense
	for _, part := range strings.Split(arg, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		e, msg, ok := s.parseExpense(catalog, part)
		if !ok {
			return msg + ": " + strings.TrimSpace(part), nil
		}
		items = append(items, e)
	}
	if len(items) == 0 {
		return incorrectUsageMessage, nil
	}
	res, err := s.deps.Expenses.BatchSave(ctx, items)
	if err != nil {
		return "", errors.Wrap(err, "handle batch")
	}
	msg := fmt.Sprintf(batchResultMessage, res.Succeeded, res.Failed)
	if res.Failed > 0 {
		return msg, errors.Errorf("batch save: %d of %d failed", res.Failed, len(items))
	}
	s.deps.Notifier.ShowSuccess(msg)
	return "", nil
}

func (s *HandlerService) findExpense(ctx context.Context, id string) (*expense.Expense, error) {
	all, err := s.deps.Expenses.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil || amount.IsNegative() {
		return incorrectExpenseMessage, nil
	}
	current, err := s.findExpense(ctx, args[0])
	if err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle edit")
	}
	if current == nil {
		return unknownExpenseMessage, nil
	}
	edited := *current
	edited.Amount = amount
	if len(args) > 2 {
		if _, err = time.Parse(expense.DateLayout, args[2]); err != nil {
			return incorrectDateMessage, nil
		}
		edited.Date = args[2]
	}
	if _, err = s.deps.Expenses.Update(ctx, edited); err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle edit")
	}
	s.deps.Notifier.ShowSuccess(updatedMessage)
	return "", nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		return incorrectUsageMessage, nil
	}
	err := s.deps.Expenses.Delete(ctx, arg)
	if errors.Is(err, gateway.ErrNotFound) {
		return unknownExpenseMessage, nil
	}
	if err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle delete")
	}
	s.deps.Notifier.ShowSuccess(deletedMessage)
	return "", nil
}

func (s *HandlerService) handleList(ctx context.Context, _ string) (string, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return loadCategoriesMessage, err
	}
	all, err := s.deps.Expenses.LoadAll(ctx)
	if err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle list")
	}
	return formatExpenses(all, catalog), nil
}

func (s *HandlerService) handleCategories(ctx context.Context, _ string) (string, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return loadCategoriesMessage, err
	}
	return formatTree(catalog), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string) (string, error) {
	period, err := reports.ParsePeriod(arg)
	if err != nil {
		return incorrectUsageMessage, nil
	}
	catalog, err := s.catalog(ctx)
	if err != nil {
		return loadCategoriesMessage, err
	}
	summary, err := s.deps.Dashboard.Summary(ctx, period)
	if err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle report")
	}
	return formatSummary(summary, catalog), nil
}

// handleBreakdown defaults to the current month.
func (s *HandlerService) handleBreakdown(ctx context.Context, arg string) (string, error) {
	start, end := reports.Window(reports.Month, s.deps.Now())
	startDate, endDate := expense.FormatDate(start), expense.FormatDate(end)
	if args := strings.Fields(arg); len(args) > 0 {
		if len(args) != 2 {
			return incorrectUsageMessage, nil
		}
		for _, d := range args {
			if _, err := time.Parse(expense.DateLayout, d); err != nil {
				return incorrectDateMessage, nil
			}
		}
		startDate, endDate = args[0], args[1]
	}
	rows, err := s.deps.Expenses.GetCategoryBreakdown(ctx, startDate, endDate)
	if err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle breakdown")
	}
	return formatBreakdown(rows), nil
}

func (s *HandlerService) handleTrend(ctx context.Context, arg string) (string, error) {
	if arg == "all" {
		rows, err := s.deps.Expenses.GetYearlyTrend(ctx)
		if err != nil {
			return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle trend")
		}
		return formatYearly(rows), nil
	}
	year := s.deps.Now().Year()
	if arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil {
			return incorrectUsageMessage, nil
		}
		year = parsed
	}
	rows, err := s.deps.Expenses.GetMonthlyTrend(ctx, year)
	if err != nil {
		return gateway.UserMessage(err, somethingWrongMessage), errors.Wrap(err, "handle trend")
	}
	return formatMonthly(year, rows), nil
}

func (s *HandlerService) handleNoCommand(context.Context, string) (string, error) {
	return loveToTalkMessage, nil
}
