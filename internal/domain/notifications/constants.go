package notifications

const KindLongLeave = "long_leave"

const errDeliveryDisabled = "email delivery disabled"
