package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria-iris/tienda/internal/application/store"
	"github.com/muebleria-iris/tienda/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios de prueba
// ──────────────────────────────────────────────────────────────────────────────

// brokenRepo simula un storage no disponible (p. ej. render en servidor).
type brokenRepo struct{}

var errRoto = errors.New("storage roto")

func (brokenRepo) Load(context.Context, string) ([]byte, bool, error) { return nil, false, errRoto }
func (brokenRepo) Save(context.Context, string, []byte) error         { return errRoto }
func (brokenRepo) Delete(context.Context, string) error               { return errRoto }

// gatedRepo bloquea cada Save hasta que el test libere la compuerta.
type gatedRepo struct {
	*storage.MemoryRepository
	gate    chan struct{}
	started chan struct{}
	once    sync.Once
}

func newGatedRepo() *gatedRepo {
	return &gatedRepo{
		MemoryRepository: storage.NewMemoryRepository(),
		gate:             make(chan struct{}),
		started:          make(chan struct{}),
	}
}

func (g *gatedRepo) Save(ctx context.Context, key string, value []byte) error {
	g.once.Do(func() { close(g.started) })
	<-g.gate
	return g.MemoryRepository.Save(ctx, key, value)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cell
// ──────────────────────────────────────────────────────────────────────────────

func TestCell_SubscribeRecibeValorActualYCambios(t *testing.T) {
	c := store.NewCell(1)
	var got []int
	unsub := c.Subscribe(func(v int) { got = append(got, v) })

	c.Set(2)
	c.Update(func(v int) int { return v * 10 })
	unsub()
	c.Set(99)

	assert.Equal(t, []int{1, 2, 20}, got)
	assert.Equal(t, 99, c.Get())
	assert.Equal(t, uint64(3), c.Version())
	assert.Zero(t, c.Subscribers())
}

func TestCell_TryUpdateRechazadoNoNotifica(t *testing.T) {
	c := store.NewCell(5)
	var got []int
	c.Watch(func(v int) { got = append(got, v) })

	v, ok := c.TryUpdate(func(cur int) (int, bool) { return cur + 1, false })
	assert.False(t, ok)
	assert.Equal(t, 5, v)
	assert.Zero(t, c.Version())
	assert.Empty(t, got)

	v, ok = c.TryUpdate(func(cur int) (int, bool) { return cur + 1, true })
	assert.True(t, ok)
	assert.Equal(t, 6, v)
	assert.Equal(t, uint64(1), c.Version())
	assert.Equal(t, []int{6}, got)
}

func TestCell_WatchNoLlamaAlSuscribir(t *testing.T) {
	c := store.NewCell("a")
	calls := 0
	c.Watch(func(string) { calls++ })
	assert.Zero(t, calls)
	c.Set("b")
	assert.Equal(t, 1, calls)
}

func TestCell_NotificaEnOrdenDeSuscripcion(t *testing.T) {
	c := store.NewCell(0)
	var order []string
	c.Watch(func(int) { order = append(order, "primero") })
	c.Watch(func(int) { order = append(order, "segundo") })
	c.Set(1)
	assert.Equal(t, []string{"primero", "segundo"}, order)
}

func TestCell_UnsubscribeDesdeCallback(t *testing.T) {
	c := store.NewCell(0)
	calls := 0
	var unsub func()
	unsub = c.Watch(func(int) {
		calls++
		unsub()
	})
	c.Set(1)
	c.Set(2)
	assert.Equal(t, 1, calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistent
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistent_SiembraDesdeSlot(t *testing.T) {
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), "slot", []byte(`[1,2,3]`)))

	p := store.NewPersistent(context.Background(), repo, "slot", []int{}, store.JSONCodec[[]int](), zerolog.Nop())
	defer p.Close()

	assert.Equal(t, []int{1, 2, 3}, p.Get())
}

func TestPersistent_SlotAusenteOCorruptoUsaDefault(t *testing.T) {
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), "corrupto", []byte(`{no json`)))

	ausente := store.NewPersistent(context.Background(), repo, "ausente", []int{7}, store.JSONCodec[[]int](), zerolog.Nop())
	defer ausente.Close()
	corrupto := store.NewPersistent(context.Background(), repo, "corrupto", []int{7}, store.JSONCodec[[]int](), zerolog.Nop())
	defer corrupto.Close()

	assert.Equal(t, []int{7}, ausente.Get())
	assert.Equal(t, []int{7}, corrupto.Get())
}

func TestPersistent_StorageRotoNoFalla(t *testing.T) {
	p := store.NewPersistent(context.Background(), brokenRepo{}, "slot", "def", store.StringCodec(), zerolog.Nop())
	defer p.Close()

	assert.Equal(t, "def", p.Get())
	assert.NotPanics(t, func() {
		p.Set("nuevo")
		p.Flush()
	})
	assert.Equal(t, "nuevo", p.Get(), "la memoria sigue siendo la fuente")
}

func TestPersistent_SinRepoSoloMemoria(t *testing.T) {
	p := store.NewPersistent[string](context.Background(), nil, "slot", "x", store.StringCodec(), zerolog.Nop())
	defer p.Close()
	p.Set("y")
	p.Flush()
	assert.Equal(t, "y", p.Get())
}

func TestPersistent_GuardaCadaCambio(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	p := store.NewPersistent(ctx, repo, "slot", []int{}, store.JSONCodec[[]int](), zerolog.Nop())
	defer p.Close()

	_, found, _ := repo.Load(ctx, "slot")
	assert.False(t, found, "el valor inicial no se escribe")

	p.Set([]int{4})
	p.Set([]int{4, 5})
	p.Flush()

	raw, found, err := repo.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[4,5]`, string(raw))
}

func TestPersistent_NilEliminaSlot(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, "muebleria-token", []byte("aaa.bbb.ccc")))

	p := store.NewPersistent(ctx, repo, "muebleria-token", "", store.StringCodec(), zerolog.Nop())
	defer p.Close()
	assert.Equal(t, "aaa.bbb.ccc", p.Get())

	p.Set("")
	p.Flush()
	_, found, _ := repo.Load(ctx, "muebleria-token")
	assert.False(t, found)
}

func TestPersistent_NullableJSON(t *testing.T) {
	type perfil struct {
		Nombre string `json:"nombre"`
	}
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, "nulo", []byte("null")))

	p := store.NewPersistent(ctx, repo, "nulo", &perfil{Nombre: "def"}, store.NullableJSONCodec[perfil](), zerolog.Nop())
	defer p.Close()
	assert.Nil(t, p.Get(), "null en el slot se lee como ausente")

	p.Set(&perfil{Nombre: "Iris"})
	p.Flush()
	raw, _, _ := repo.Load(ctx, "nulo")
	assert.JSONEq(t, `{"nombre":"Iris"}`, string(raw))
}

func TestPersistent_EscrituraNoBloqueaSuscriptores(t *testing.T) {
	repo := newGatedRepo()
	p := store.NewPersistent(context.Background(), repo, "slot", 0, store.JSONCodec[int](), zerolog.Nop())

	seen := make(chan int, 4)
	p.Watch(func(v int) { seen <- v })

	p.Set(1)
	<-repo.started // la escritora quedó bloqueada en Save

	done := make(chan struct{})
	go func() {
		p.Set(2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Set quedó bloqueado por la escritura")
	}
	assert.Equal(t, 1, <-seen)
	assert.Equal(t, 2, <-seen)
	assert.Equal(t, 2, p.Get())

	close(repo.gate)
	p.Flush()
	p.Close()

	raw, found, err := repo.Load(context.Background(), "slot")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2", string(raw), "se guarda el valor más reciente")
}
