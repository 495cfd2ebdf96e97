package update

type Updater struct {
	store    Store
	logger   Logger
	notifier Notifier
}

func New(store Store, logger Logger, notifier Notifier) *Updater {
	return &Updater{
		store:    store,
		logger:   logger,
		notifier: notifier,
	}
}
