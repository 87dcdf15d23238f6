package broken_kind_controller

type Controller int
