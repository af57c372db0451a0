package catalog

import "github.com/hanguiano/activador/internal/domain"

// The catalog data is carried over from the published collections as-is,
// duplicated codes included (897 appears twice among the sacred codes).

var sacredEntries = []domain.CatalogEntry{
	// Prosperidad
	{Code: 520, Name: "Éxito Inesperado", Description: "Atrae el éxito y la prosperidad de fuentes inesperadas.", Category: "Prosperidad"},
	{Code: 71269, Name: "Abundancia", Description: "Para atraer la abundancia y la riqueza a tu vida.", Category: "Prosperidad"},
	{Code: 19, Name: "Atraer Clientes", Description: "Para negocios y emprendimientos, ayuda a atraer más clientes.", Category: "Prosperidad"},
	{Code: 1122, Name: "Fluidez del Dinero", Description: "Elimina bloqueos y permite que el dinero fluya con facilidad.", Category: "Prosperidad"},
	{Code: 42170, Name: "Solución a Problemas Económicos", Description: "Para encontrar soluciones rápidas y efectivas a problemas de dinero.", Category: "Prosperidad"},
	{Code: 897, Name: "Cancelar Deudas", Description: "Ayuda a manifestar los medios para liquidar deudas pendientes.", Category: "Prosperidad"},

	// Salud
	{Code: 8, Name: "Sanación General", Description: "Código general para la sanación de cualquier dolencia física o emocional.", Category: "Salud"},
	{Code: 608, Name: "Solucionar Problemas de Salud", Description: "Ayuda a encontrar la raíz y la solución a problemas de salud.", Category: "Salud"},
	{Code: 29, Name: "Restablecer la Salud", Description: "Para la recuperación y el restablecimiento completo de la salud.", Category: "Salud"},
	{Code: 897, Name: "Disolver la Ansiedad", Description: "Calma la mente y el espíritu, aliviando la ansiedad y el estrés.", Category: "Salud"},
	{Code: 555, Name: "Acelerar la Sanación", Description: "Potencia y acelera cualquier proceso de sanación en curso.", Category: "Salud"},
	{Code: 911, Name: "Aliviar Dolor de Cabeza", Description: "Para aliviar migrañas y dolores de cabeza tensionales.", Category: "Salud"},
	{Code: 52511, Name: "Fortalecer Sistema Inmune", Description: "Eleva las defensas del cuerpo para prevenir enfermedades.", Category: "Salud"},

	// Amor
	{Code: 2526, Name: "Atraer el Amor", Description: "Para atraer a un compañero/a de vida o fortalecer una relación existente.", Category: "Amor"},
	{Code: 571, Name: "Facilitar Conexión con Alma Gemela", Description: "Ayuda a alinear las energías para encontrar a tu alma gemela.", Category: "Amor"},
	{Code: 541, Name: "Fortalecer Amor Propio", Description: "Aumenta la autoestima, la confianza y el amor por uno mismo.", Category: "Amor"},
	{Code: 739, Name: "Sanar Relaciones Familiares", Description: "Para resolver conflictos y promover la armonía en la familia.", Category: "Amor"},
	{Code: 35133, Name: "Amor Universal", Description: "Para conectar con la energía del amor incondicional y la compasión.", Category: "Amor"},

	// Desarrollo Espiritual
	{Code: 3333, Name: "Gratitud", Description: "Potencia el sentimiento de gratitud, abriendo puertas a más bendiciones.", Category: "Desarrollo Espiritual"},
	{Code: 691, Name: "Abrir Caminos", Description: "Despeja obstáculos y abre nuevas oportunidades en todos los ámbitos.", Category: "Desarrollo Espiritual"},
	{Code: 2, Name: "Conexión con la Madre Tierra", Description: "Para enraizar y conectar con la energía sanadora de la Tierra.", Category: "Desarrollo Espiritual"},
	{Code: 1111, Name: "Apertura de Portales", Description: "Sincroniza con nuevas energías y oportunidades de crecimiento espiritual.", Category: "Desarrollo Espiritual"},
	{Code: 2190, Name: "Desarrollar Intuición", Description: "Abre y afina el canal intuitivo para recibir guía divina.", Category: "Desarrollo Espiritual"},

	// Protección
	{Code: 8888, Name: "Protección Divina", Description: "Invoca la protección de los seres de luz contra cualquier negatividad.", Category: "Protección"},
	{Code: 729, Name: "Limpieza Energética", Description: "Limpia espacios, personas y objetos de energías negativas.", Category: "Protección"},
	{Code: 70, Name: "Arcángel Miguel", Description: "Para invocar la protección y la fuerza del Arcángel Miguel.", Category: "Protección"},
	{Code: 777, Name: "Ángeles de la Guarda", Description: "Para una comunicación más clara y directa con tus ángeles guardianes.", Category: "Protección"},
	{Code: 444, Name: "Protección contra Envidias", Description: "Crea un escudo energético contra la envidia y el mal de ojo.", Category: "Protección"},
}

var agestaEntries = []domain.CatalogEntry{
	// Salud y Bienestar
	{Code: 900, Name: "Superar Adicciones", Description: "Para liberarse de dependencias y hábitos nocivos.", Category: "Salud y Bienestar"},
	{Code: 128, Name: "Bajar de Peso", Description: "Ayuda a equilibrar el metabolismo y a alcanzar un peso saludable.", Category: "Salud y Bienestar"},
	{Code: 3, Name: "Sanar el Corazón (Físico)", Description: "Para problemas cardíacos y fortalecimiento del sistema circulatorio.", Category: "Salud y Bienestar"},
	{Code: 511, Name: "Conciliar el Sueño", Description: "Promueve un descanso profundo y reparador, combate el insomnio.", Category: "Salud y Bienestar"},
	{Code: 1, Name: "Paz Interior", Description: "Para calmar la mente y encontrar un estado de serenidad y paz.", Category: "Salud y Bienestar"},

	// Relaciones
	{Code: 888, Name: "Armonía en la Pareja", Description: "Fomenta el entendimiento, la comunicación y el amor en la relación.", Category: "Relaciones"},
	{Code: 7070, Name: "Atraer Amigos", Description: "Para abrirse a nuevas amistades sinceras y duraderas.", Category: "Relaciones"},
	{Code: 82, Name: "Resolver Conflictos", Description: "Ayuda a encontrar soluciones pacíficas y justas en disputas.", Category: "Relaciones"},
	{Code: 105, Name: "Sanar Árbol Genealógico", Description: "Libera patrones y cargas ancestrales para sanar el linaje.", Category: "Relaciones"},

	// Trabajo y Dinero
	{Code: 71588, Name: "Conseguir Empleo", Description: "Atrae oportunidades laborales y éxito en entrevistas de trabajo.", Category: "Trabajo y Dinero"},
	{Code: 5701, Name: "Éxito en el Trabajo", Description: "Para el reconocimiento, promoción y éxito en la carrera profesional.", Category: "Trabajo y Dinero"},
	{Code: 691, Name: "Abrir Caminos Laborales", Description: "Desbloquea oportunidades y abre puertas a nuevos proyectos.", Category: "Trabajo y Dinero"},
	{Code: 47620, Name: "Recibir Dinero Urgente", Description: "Para situaciones de emergencia donde se necesita dinero rápidamente.", Category: "Trabajo y Dinero"},

	// Situaciones Generales
	{Code: 525, Name: "Aprobar Exámenes", Description: "Ayuda a la concentración, memoria y a tener éxito en pruebas y estudios.", Category: "Situaciones Generales"},
	{Code: 1818, Name: "Vender una Propiedad", Description: "Facilita y acelera la venta de una casa, terreno u otra propiedad.", Category: "Situaciones Generales"},
	{Code: 1021, Name: "Protección para Viajes", Description: "Asegura un viaje seguro y libre de contratiempos.", Category: "Situaciones Generales"},
	{Code: 780, Name: "Recuperar Objetos Perdidos", Description: "Ayuda a encontrar cosas que se han extraviado.", Category: "Situaciones Generales"},

	// Ángeles y Seres de Luz
	{Code: 333, Name: "Arcángel Gabriel", Description: "Para la comunicación, la creatividad y la guía en nuevos comienzos.", Category: "Ángeles y Seres de Luz"},
	{Code: 725, Name: "Arcángel Rafael", Description: "Invoca la energía sanadora del Arcángel Rafael para cuerpo y alma.", Category: "Ángeles y Seres de Luz"},
	{Code: 881, Name: "Maestro Saint Germain", Description: "Para la transmutación, el perdón y la liberación (Llama Violeta).", Category: "Ángeles y Seres de Luz"},
}

var runeEntries = []domain.CatalogEntry{
	// Prosperidad y Material
	{Name: "Fehu", Description: "Riqueza, abundancia, prosperidad material y financiera. Nuevos comienzos.", Category: "Prosperidad y Material"},
	{Name: "Jera", Description: "Cosecha, ciclos, recompensa por el esfuerzo. Resultados y paciencia.", Category: "Prosperidad y Material"},
	{Name: "Othala", Description: "Herencia, hogar, legado y pertenencia. Raíces y patrimonio.", Category: "Prosperidad y Material"},

	// Fuerza y Poder
	{Name: "Uruz", Description: "Fuerza vital, salud, coraje y energía física. Potencia y resistencia.", Category: "Fuerza y Poder"},
	{Name: "Thurisaz", Description: "Fuerza reactiva, defensa, conflicto. Romper barreras.", Category: "Fuerza y Poder"},
	{Name: "Sowilo", Description: "El Sol, éxito, vitalidad y poder. Claridad y victoria.", Category: "Fuerza y Poder"},

	// Comunicación y Sabiduría
	{Name: "Ansuz", Description: "Comunicación, inspiración divina, sabiduría y verdad. Mensajes.", Category: "Comunicación y Sabiduría"},
	{Name: "Kenaz", Description: "Conocimiento, iluminación, creatividad y revelación. La antorcha interior.", Category: "Comunicación y Sabiduría"},
	{Name: "Mannaz", Description: "La humanidad, la conciencia, la inteligencia y la cooperación social.", Category: "Comunicación y Sabiduría"},

	// Viaje y Destino
	{Name: "Raido", Description: "Viaje, movimiento, evolución y decisiones correctas. El camino de la vida.", Category: "Viaje y Destino"},
	{Name: "Ehwaz", Description: "Movimiento, progreso, confianza y alianzas. El caballo y su jinete.", Category: "Viaje y Destino"},
	{Name: "Nauthiz", Description: "Necesidad, restricción, superación de la adversidad. La fuerza de la voluntad.", Category: "Viaje y Destino"},

	// Protección y Defensa
	{Name: "Algiz", Description: "Protección divina, defensa, conexión con planos superiores. Escudo.", Category: "Protección y Defensa"},
	{Name: "Isa", Description: "Hielo, estancamiento, pausa, introspección. Detención y conservación.", Category: "Protección y Defensa"},
	{Name: "Tiwaz", Description: "Honor, justicia, liderazgo y sacrificio por una causa justa. La flecha del guerrero.", Category: "Protección y Defensa"},
}
