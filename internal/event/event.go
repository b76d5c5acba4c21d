// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события. Data заполняется полезной нагрузкой
// конкретного типа (DamageInfo, KillInfo и т.п.), если она нужна.
type Event struct {
	Type EventType
	Data interface{}
}

// DamageInfo — нагрузка события EnemyDamaged.
type DamageInfo struct {
	X, Z       float64
	Amount     int
	DamageType string
}

// KillInfo — нагрузка событий EnemyDied и EnemyLeaked.
type KillInfo struct {
	Gold int
	Wave int
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
