package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aalvaropc/lumen/internal/domain"
)

const (
	testSecret = "SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN"
	testSource = "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6"
	testDest   = "GAVUFP3ZYPPQNPLGYCRWHE5DSEAB7EYNSYJTJ6T4WVNS7ZEZNGLZDCQG"
)

// fakeKeys accepts testSecret and any 56-char address starting with G.
type fakeKeys struct{}

func (fakeKeys) DeriveAddress(s domain.Secret) (string, error) {
	if s.Reveal() == testSecret {
		return testSource, nil
	}
	return "", errors.New("invalid encoded string")
}

func (fakeKeys) ValidateAddress(s string) error {
	if len(s) == domain.KeyLength && strings.HasPrefix(s, "G") {
		return nil
	}
	return errors.New("invalid encoded string")
}

// fakeDirectory answers LoadAccount per account id.
type fakeDirectory struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	errs     map[string]error
	calls    []string
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{accounts: map[string]domain.Account{}, errs: map[string]error{}}
}

func (d *fakeDirectory) withAccount(a domain.Account) *fakeDirectory {
	d.accounts[a.ID] = a
	return d
}

func (d *fakeDirectory) withError(id string, err error) *fakeDirectory {
	d.errs[id] = err
	return d
}

func (d *fakeDirectory) LoadAccount(_ context.Context, id string) (domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, id)

	if err, ok := d.errs[id]; ok {
		return domain.Account{}, err
	}
	if a, ok := d.accounts[id]; ok {
		return a, nil
	}
	return domain.Account{}, &domain.OpError{Op: "horizon.account", Kind: domain.KindNotFound, Path: id, Err: domain.ErrNotFound}
}

type fakeFees struct {
	fee int64
	err error
}

func (f fakeFees) FetchBaseFee(context.Context) (int64, error) { return f.fee, f.err }

type fakeSigner struct {
	plans []domain.TxPlan
	err   error
	panic bool
}

func (s *fakeSigner) Sign(plan domain.TxPlan) (domain.SignedEnvelope, error) {
	if s.panic {
		panic("boom")
	}
	s.plans = append(s.plans, plan)
	if s.err != nil {
		return domain.SignedEnvelope{}, s.err
	}
	return domain.SignedEnvelope{XDR: "AAAA", Hash: "local"}, nil
}

type fakeSubmitter struct {
	hash  string
	err   error
	calls int
}

func (s *fakeSubmitter) Submit(context.Context, domain.SignedEnvelope) (string, error) {
	s.calls++
	return s.hash, s.err
}

type fakeReceipts struct {
	saved []domain.Receipt
	err   error
}

func (r *fakeReceipts) SaveReceipt(rc domain.Receipt) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.saved = append(r.saved, rc)
	return "receipt-1", nil
}

func (r *fakeReceipts) ListReceipts(limit int) ([]domain.Receipt, error) {
	if limit > 0 && limit < len(r.saved) {
		return r.saved[:limit], nil
	}
	return r.saved, nil
}

type fakeGenerator struct {
	calls int
	err   error
}

func (g *fakeGenerator) Generate() (domain.Wallet, error) {
	g.calls++
	if g.err != nil {
		return domain.Wallet{}, g.err
	}
	return domain.Wallet{PublicKey: testSource, Secret: testSecret, Mnemonic: "illness spike"}, nil
}

func (g *fakeGenerator) Recover(m string) (domain.Wallet, error) {
	return domain.Wallet{PublicKey: testSource, Secret: testSecret, Mnemonic: m}, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}
