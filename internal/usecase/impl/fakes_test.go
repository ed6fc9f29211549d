package impl

import (
	"context"
	"sort"

	"praxis/internal/domain/entity"
	"praxis/internal/domain/repository"

	"github.com/google/uuid"
)

// memState is the in-memory database shared by the fake repositories. The
// fake transaction manager clones it before running a callback and only
// swaps the clone in on success, which gives tests real rollback semantics.
type memState struct {
	principals   map[uuid.UUID]*entity.Principal
	clients      map[uuid.UUID]*entity.Client
	cases        map[uuid.UUID]*entity.Case
	caseLogs     map[uuid.UUID]*entity.CaseLog
	contracts    map[uuid.UUID]*entity.Contract
	documents    map[uuid.UUID]*entity.Document
	transactions map[uuid.UUID]*entity.Transaction
	events       map[uuid.UUID]*entity.Event
	tasks        map[uuid.UUID]*entity.Task
}

func newMemState() *memState {
	return &memState{
		principals:   make(map[uuid.UUID]*entity.Principal),
		clients:      make(map[uuid.UUID]*entity.Client),
		cases:        make(map[uuid.UUID]*entity.Case),
		caseLogs:     make(map[uuid.UUID]*entity.CaseLog),
		contracts:    make(map[uuid.UUID]*entity.Contract),
		documents:    make(map[uuid.UUID]*entity.Document),
		transactions: make(map[uuid.UUID]*entity.Transaction),
		events:       make(map[uuid.UUID]*entity.Event),
		tasks:        make(map[uuid.UUID]*entity.Task),
	}
}

func cloneMap[V any](src map[uuid.UUID]*V) map[uuid.UUID]*V {
	dst := make(map[uuid.UUID]*V, len(src))
	for k, v := range src {
		copied := *v
		dst[k] = &copied
	}

	return dst
}

func (s *memState) clone() *memState {
	return &memState{
		principals:   cloneMap(s.principals),
		clients:      cloneMap(s.clients),
		cases:        cloneMap(s.cases),
		caseLogs:     cloneMap(s.caseLogs),
		contracts:    cloneMap(s.contracts),
		documents:    cloneMap(s.documents),
		transactions: cloneMap(s.transactions),
		events:       cloneMap(s.events),
		tasks:        cloneMap(s.tasks),
	}
}

// --- principal repository ---

type fakePrincipals struct{ s *memState }

func (f *fakePrincipals) FindByIdentifier(_ context.Context, identifier string) (*entity.Principal, error) {
	for _, p := range f.s.principals {
		if p.Identifier == identifier {
			copied := *p

			return &copied, nil
		}
	}

	return nil, repository.ErrPrincipalNotFound
}

func (f *fakePrincipals) FindByID(_ context.Context, id uuid.UUID) (*entity.Principal, error) {
	p, ok := f.s.principals[id]
	if !ok {
		return nil, repository.ErrPrincipalNotFound
	}
	copied := *p

	return &copied, nil
}

func (f *fakePrincipals) Create(_ context.Context, p *entity.Principal) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	copied := *p
	f.s.principals[p.ID] = &copied

	return nil
}

func (f *fakePrincipals) DeleteByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for id, p := range f.s.principals {
		if p.ClientID != nil && *p.ClientID == clientID {
			delete(f.s.principals, id)
			n++
		}
	}

	return n, nil
}

// --- client repository ---

type fakeClients struct{ s *memState }

func (f *fakeClients) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := f.s.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	copied := *c

	return &copied, nil
}

func (f *fakeClients) List(_ context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(f.s.clients))
	for _, c := range f.s.clients {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (f *fakeClients) Create(_ context.Context, c *entity.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	copied := *c
	f.s.clients[c.ID] = &copied

	return nil
}

func (f *fakeClients) Update(_ context.Context, c *entity.Client) error {
	stored, ok := f.s.clients[c.ID]
	if !ok {
		return repository.ErrClientNotFound
	}
	stored.Name = c.Name
	stored.Email = c.Email
	stored.Phone = c.Phone
	stored.Document = c.Document

	return nil
}

func (f *fakeClients) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.clients[id]; !ok {
		return repository.ErrClientNotFound
	}
	delete(f.s.clients, id)

	return nil
}

// --- case repository ---

type fakeCases struct{ s *memState }

func (f *fakeCases) FindByID(_ context.Context, id uuid.UUID) (*entity.Case, error) {
	c, ok := f.s.cases[id]
	if !ok {
		return nil, repository.ErrCaseNotFound
	}
	copied := *c
	copied.Logs = nil
	for _, l := range f.s.caseLogs {
		if l.CaseID == id {
			logCopy := *l
			copied.Logs = append(copied.Logs, &logCopy)
		}
	}

	return &copied, nil
}

func (f *fakeCases) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Case, error) {
	var out []*entity.Case
	for _, c := range f.s.cases {
		if c.ClientID == clientID {
			copied := *c
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeCases) Create(_ context.Context, c *entity.Case) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	copied := *c
	f.s.cases[c.ID] = &copied

	return nil
}

func (f *fakeCases) Update(_ context.Context, c *entity.Case) error {
	stored, ok := f.s.cases[c.ID]
	if !ok {
		return repository.ErrCaseNotFound
	}
	stored.Number = c.Number
	stored.Court = c.Court
	stored.Subject = c.Subject
	stored.Status = c.Status

	return nil
}

func (f *fakeCases) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.cases[id]; !ok {
		return repository.ErrCaseNotFound
	}
	for logID, l := range f.s.caseLogs {
		if l.CaseID == id {
			delete(f.s.caseLogs, logID)
		}
	}
	delete(f.s.cases, id)

	return nil
}

func (f *fakeCases) AddLog(_ context.Context, log *entity.CaseLog) error {
	if _, ok := f.s.cases[log.CaseID]; !ok {
		return repository.ErrCaseNotFound
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	copied := *log
	f.s.caseLogs[log.ID] = &copied

	return nil
}

func (f *fakeCases) DeleteLogsByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for logID, l := range f.s.caseLogs {
		c, ok := f.s.cases[l.CaseID]
		if ok && c.ClientID == clientID {
			delete(f.s.caseLogs, logID)
			n++
		}
	}

	return n, nil
}

func (f *fakeCases) DeleteByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for id, c := range f.s.cases {
		if c.ClientID == clientID {
			delete(f.s.cases, id)
			n++
		}
	}

	return n, nil
}

// --- contract repository ---

type fakeContracts struct{ s *memState }

func (f *fakeContracts) FindByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	c, ok := f.s.contracts[id]
	if !ok {
		return nil, repository.ErrContractNotFound
	}
	copied := *c

	return &copied, nil
}

func (f *fakeContracts) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range f.s.contracts {
		if c.ClientID == clientID {
			copied := *c
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeContracts) Create(_ context.Context, c *entity.Contract) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	copied := *c
	f.s.contracts[c.ID] = &copied

	return nil
}

func (f *fakeContracts) Update(_ context.Context, c *entity.Contract) error {
	stored, ok := f.s.contracts[c.ID]
	if !ok {
		return repository.ErrContractNotFound
	}
	stored.Description = c.Description
	stored.Value = c.Value
	stored.SignedAt = c.SignedAt

	return nil
}

func (f *fakeContracts) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.contracts[id]; !ok {
		return repository.ErrContractNotFound
	}
	delete(f.s.contracts, id)

	return nil
}

func (f *fakeContracts) DeleteByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for id, c := range f.s.contracts {
		if c.ClientID == clientID {
			delete(f.s.contracts, id)
			n++
		}
	}

	return n, nil
}

// --- document repository ---

type fakeDocuments struct{ s *memState }

func (f *fakeDocuments) FindByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := f.s.documents[id]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	copied := *d

	return &copied, nil
}

func (f *fakeDocuments) FindByStoragePath(_ context.Context, storagePath string) (*entity.Document, error) {
	for _, d := range f.s.documents {
		if d.StoragePath == storagePath {
			copied := *d

			return &copied, nil
		}
	}

	return nil, repository.ErrDocumentNotFound
}

func (f *fakeDocuments) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.s.documents {
		if d.ClientID == clientID {
			copied := *d
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeDocuments) Create(_ context.Context, doc *entity.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	copied := *doc
	f.s.documents[doc.ID] = &copied

	return nil
}

func (f *fakeDocuments) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.documents[id]; !ok {
		return repository.ErrDocumentNotFound
	}
	delete(f.s.documents, id)

	return nil
}

func (f *fakeDocuments) DeleteByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for id, d := range f.s.documents {
		if d.ClientID == clientID {
			delete(f.s.documents, id)
			n++
		}
	}

	return n, nil
}

// --- financial repository ---

type fakeFinancial struct{ s *memState }

func (f *fakeFinancial) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := f.s.transactions[id]
	if !ok {
		return nil, repository.ErrTransactionNotFound
	}
	copied := *t

	return &copied, nil
}

func (f *fakeFinancial) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.s.transactions {
		if t.ClientID == clientID {
			copied := *t
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeFinancial) Create(_ context.Context, t *entity.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	copied := *t
	f.s.transactions[t.ID] = &copied

	return nil
}

func (f *fakeFinancial) Update(_ context.Context, t *entity.Transaction) error {
	stored, ok := f.s.transactions[t.ID]
	if !ok {
		return repository.ErrTransactionNotFound
	}
	stored.Kind = t.Kind
	stored.Amount = t.Amount
	stored.Description = t.Description
	stored.OccurredAt = t.OccurredAt

	return nil
}

func (f *fakeFinancial) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.transactions[id]; !ok {
		return repository.ErrTransactionNotFound
	}
	delete(f.s.transactions, id)

	return nil
}

func (f *fakeFinancial) DeleteByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for id, t := range f.s.transactions {
		if t.ClientID == clientID {
			delete(f.s.transactions, id)
			n++
		}
	}

	return n, nil
}

// --- schedule repository ---

type fakeSchedule struct{ s *memState }

func (f *fakeSchedule) FindEventByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	e, ok := f.s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	copied := *e

	return &copied, nil
}

func (f *fakeSchedule) ListEventsByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Event, error) {
	var out []*entity.Event
	for _, e := range f.s.events {
		if e.ClientID != nil && *e.ClientID == clientID {
			copied := *e
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeSchedule) CreateEvent(_ context.Context, e *entity.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	copied := *e
	f.s.events[e.ID] = &copied

	return nil
}

func (f *fakeSchedule) UpdateEvent(_ context.Context, e *entity.Event) error {
	stored, ok := f.s.events[e.ID]
	if !ok {
		return repository.ErrEventNotFound
	}
	*stored = *e

	return nil
}

func (f *fakeSchedule) DeleteEvent(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.s.events, id)

	return nil
}

func (f *fakeSchedule) FindTaskByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	t, ok := f.s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	copied := *t

	return &copied, nil
}

func (f *fakeSchedule) ListTasksByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.s.tasks {
		if t.ClientID != nil && *t.ClientID == clientID {
			copied := *t
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeSchedule) CreateTask(_ context.Context, t *entity.Task) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	copied := *t
	f.s.tasks[t.ID] = &copied

	return nil
}

func (f *fakeSchedule) UpdateTask(_ context.Context, t *entity.Task) error {
	stored, ok := f.s.tasks[t.ID]
	if !ok {
		return repository.ErrTaskNotFound
	}
	*stored = *t

	return nil
}

func (f *fakeSchedule) DeleteTask(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(f.s.tasks, id)

	return nil
}

func (f *fakeSchedule) UnlinkEventsByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range f.s.events {
		if e.ClientID != nil && *e.ClientID == clientID {
			e.ClientID = nil
			n++
		}
	}

	return n, nil
}

func (f *fakeSchedule) UnlinkTasksByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range f.s.tasks {
		if t.ClientID != nil && *t.ClientID == clientID {
			t.ClientID = nil
			n++
		}
	}

	return n, nil
}

// --- transaction manager ---

type fakeFactory struct{ s *memState }

func (f *fakeFactory) PrincipalRepo() repository.PrincipalRepository { return &fakePrincipals{s: f.s} }
func (f *fakeFactory) ClientRepo() repository.ClientRepository       { return &fakeClients{s: f.s} }
func (f *fakeFactory) CaseRepo() repository.CaseRepository           { return &fakeCases{s: f.s} }
func (f *fakeFactory) ContractRepo() repository.ContractRepository   { return &fakeContracts{s: f.s} }
func (f *fakeFactory) DocumentRepo() repository.DocumentRepository   { return &fakeDocuments{s: f.s} }
func (f *fakeFactory) FinancialRepo() repository.FinancialRepository { return &fakeFinancial{s: f.s} }
func (f *fakeFactory) ScheduleRepo() repository.ScheduleRepository   { return &fakeSchedule{s: f.s} }

// fakeTxManager runs callbacks against a clone of the state and swaps it in
// only on success, so a failed cascade leaves no trace. failWith, when set,
// makes every Execute call fail after the callback ran.
type fakeTxManager struct {
	state    *memState
	failWith error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	working := tm.state.clone()
	if err := fn(&fakeFactory{s: working}); err != nil {
		return err
	}
	if tm.failWith != nil {
		return tm.failWith
	}
	*tm.state = *working

	return nil
}
