// Package webui sirve la pantalla del mostrador de CaffeFlux: una sola
// página embebida que consume la view-API /ui/* de este mismo proceso.
package webui

import "github.com/gofiber/fiber/v2"

// GET /
func PaginaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(pagina)
	}
}

const pagina = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>CafféFlux</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:Arial,Helvetica,sans-serif;background:#e7c09bcb;color:#333;line-height:1.5}
.hdr{background:#96491d;color:#fff;padding:14px 20px;display:flex;justify-content:space-between;align-items:center}
.hdr h1{font-size:20px}
.hdr span{font-size:13px}
.tabs{display:flex;background:#6b4b34;padding:0 10px}
.tab{padding:12px 18px;cursor:pointer;color:#e7c09b;font-weight:bold;border-bottom:3px solid transparent}
.tab:hover{color:#fff}
.tab.activa{color:#fff;border-bottom-color:#e7aa71}
.contenido{max-width:960px;margin:0 auto;padding:24px;text-align:center}
.pagina{display:none}
.pagina.activa{display:block}
h2{margin-bottom:10px}
p.ayuda{margin-bottom:16px;color:#5a4632}
.botones{display:flex;flex-direction:column;gap:12px;max-width:320px;margin:30px auto}
.botones button{padding:12px;font-size:16px}
button{background:#96491d98;color:#fff;border:none;border-radius:8px;padding:10px 20px;cursor:pointer;font-weight:bold}
button:hover{opacity:.9}
button:disabled{opacity:.5;cursor:not-allowed}
button.secundario{background:#6b4b34a8}
button.peligro{background:#dc3545}
button.gris{background:#6c757d}
button.info{background:#17a2b8}
input{padding:10px;border-radius:8px;border:1px solid #ccc;width:250px;margin:5px}
table{width:100%;border-collapse:collapse;margin:15px auto;background:#fff;border-radius:10px;overflow:hidden}
th{background:#e7aa71cb;color:#6b4b34;padding:10px;text-align:left}
td{padding:8px 10px;border-bottom:1px solid #eee;text-align:left;vertical-align:top}
.fila-botones{display:flex;justify-content:center;gap:15px;margin:15px 0;flex-wrap:wrap}
.tarjetas{display:flex;flex-direction:column;gap:15px;max-width:560px;margin:20px auto}
.tarjeta{background:#fff;border-radius:14px;padding:18px;text-align:left;box-shadow:0 4px 10px rgba(0,0,0,.15);border-left:5px solid #96491d98}
.tarjeta h3{color:#96491d;margin-bottom:8px}
.estado{padding:4px 10px;border-radius:10px;font-weight:bold;font-size:.9em;float:right}
.estado.abierto{background:#53b369;color:#fff}
.estado.cerrado{background:#f8d7da;color:#c02b2b}
.grid-prod{display:grid;grid-template-columns:repeat(auto-fill,minmax(150px,1fr));gap:10px;margin:15px 0}
.grid-prod button{background:#3a6ea5;font-size:14px}
.layout-venta{display:flex;gap:20px;align-items:flex-start;text-align:left}
.col-prod{flex:3}
.col-carro{flex:2;border:1px solid #ccc;border-radius:8px;padding:15px;background:#fff8ef}
.total-box{background:#96491d98;color:#fff;border-radius:10px;padding:15px 30px;max-width:360px;margin:20px auto}
.total-box h2{margin:0}
.aviso{position:fixed;top:20px;left:50%;transform:translateX(-50%);padding:15px 30px;border-radius:10px;color:#fff;z-index:1010;box-shadow:0 4px 10px rgba(0,0,0,.3);cursor:pointer}
.aviso.ok{background:#4CAF50}
.aviso.error{background:#F44336}
.velo{position:fixed;top:0;left:0;right:0;bottom:0;background:rgba(0,0,0,.6);display:flex;justify-content:center;align-items:center;z-index:1000}
.modal{background:#fff;border-radius:15px;padding:30px;width:90%;max-width:400px;text-align:center;box-shadow:0 5px 15px rgba(0,0,0,.4)}
.modal .acciones{margin-top:20px;display:flex;gap:15px}
.modal .acciones button{flex:1}
.msg{margin-top:12px;font-weight:bold}
.msg.error{color:#c02b2b}
.msg.ok{color:#1d7a34}
.oculto{display:none}
</style>
</head>
<body>
<div class="hdr"><h1>CafféFlux</h1><span>Ayuda / Manual de Usuario</span></div>
<div class="tabs">
  <div class="tab activa" data-pag="inicio">Inicio</div>
  <div class="tab" data-pag="productos">Productos</div>
  <div class="tab" data-pag="ventas">Ventas</div>
  <div class="tab" data-pag="turnos">Turnos</div>
  <div class="tab" data-pag="admin">Administración</div>
</div>
<div class="contenido">

<div class="pagina activa" id="pag-inicio">
  <h2>PANTALLA PRINCIPAL</h2>
  <div class="botones">
    <button onclick="irA('turnos')">Iniciar Turno</button>
    <button onclick="irA('productos')">Gestión de Productos</button>
    <button onclick="irA('ventas')">Registro de Ventas</button>
    <button onclick="irA('admin')">Administración</button>
  </div>
</div>

<div class="pagina" id="pag-productos">
  <h2>Gestión de Productos</h2>
  <div id="tabla-productos"><p>Cargando productos...</p></div>
</div>

<div class="pagina" id="pag-ventas">
  <h2>Registro de Ventas</h2>
  <div class="layout-venta">
    <div class="col-prod">
      <h3>Productos Disponibles</h3>
      <div class="grid-prod" id="grid-productos"></div>
    </div>
    <div class="col-carro">
      <h3>Carrito</h3>
      <div id="carrito"><p>No hay productos seleccionados.</p></div>
      <h3 id="total-carrito">Total: $0</h3>
      <button onclick="confirmarVenta()">Confirmar Venta</button>
    </div>
  </div>
</div>

<div class="pagina" id="pag-turnos">
  <h2>🔓 Abrir Turno</h2>
  <p class="ayuda">Registra tu nombre y el fondo inicial para comenzar el día.</p>
  <input type="text" id="abrir-nombre" placeholder="Tu nombre">
  <input type="number" id="abrir-fondo" placeholder="Fondo inicial (opcional)">
  <div><button onclick="abrirTurno()">✅ Registrar Turno</button></div>
  <div class="msg" id="abrir-msg"></div>

  <h2 style="margin-top:35px">🔒 Cerrar Turno</h2>
  <p class="ayuda">Selecciona un turno abierto para cerrarlo.</p>
  <div class="tarjetas" id="turnos-abiertos"><p>No hay turnos abiertos actualmente.</p></div>

  <h2 style="margin-top:35px">📋 Turnos Registrados</h2>
  <div class="fila-botones">
    <button class="gris" onclick="limpiarPantallaTurnos()">🧹 Limpiar Pantalla</button>
    <button class="info" onclick="cargarTurnos()">🔄 Recargar Datos</button>
  </div>
  <p class="ayuda">Limpiar Pantalla solo vacía esta vista; no borra nada de la base de datos.</p>
  <div class="tarjetas" id="turnos-todos"><p>No hay registros de turnos para mostrar en pantalla.</p></div>
</div>

<div class="pagina" id="pag-admin">
  <h2>🕒 Turnos Activos</h2>
  <p class="ayuda">Listado de empleados con turnos abiertos actualmente.</p>
  <div class="tarjetas" id="turnos-activos"><p>No hay turnos activos en este momento. ✅</p></div>

  <h2 style="margin-top:35px">📊 Resumen de Ventas/Pagos</h2>
  <div class="total-box"><h2>Total del Día:</h2><h2 id="total-pagos">$0.00</h2></div>
  <button class="secundario" id="btn-detalle" onclick="alternarDetalle()">Ocultar Detalle ⬆️</button>
  <div id="tabla-pagos"></div>

  <h2 style="margin-top:35px">📅 Cerrar Día</h2>
  <p class="ayuda">Genera un informe PDF con las ventas y turnos del día. Cierra los turnos activos para resetear los contadores.</p>
  <button id="btn-cerrar-dia" onclick="pedirCierreDia()">🧾 Generar Informe</button>
</div>

</div>
<div id="zona-modal"></div>
<div id="zona-aviso"></div>
<script>
var detalleVisible = true;
var pagosCache = [];

function irA(pag){
  document.querySelectorAll('.tab').forEach(function(t){t.classList.toggle('activa', t.dataset.pag===pag);});
  document.querySelectorAll('.pagina').forEach(function(p){p.classList.toggle('activa', p.id==='pag-'+pag);});
  if(pag==='productos'||pag==='ventas') cargarProductos();
  if(pag==='ventas') cargarCarrito();
  if(pag==='turnos') cargarTurnos();
  if(pag==='admin'){cargarTurnosActivos();cargarPagos();}
}
document.querySelectorAll('.tab').forEach(function(t){t.addEventListener('click',function(){irA(t.dataset.pag);});});

function aviso(tipo, mensaje, ms){
  var zona=document.getElementById('zona-aviso');
  zona.innerHTML='<div class="aviso '+(tipo==='error'?'error':'ok')+'" onclick="this.remove()">'+mensaje+'</div>';
  setTimeout(function(){zona.innerHTML='';}, ms||3000);
}

function modalConfirmar(texto, textoBoton, alAceptar){
  var zona=document.getElementById('zona-modal');
  zona.innerHTML='<div class="velo"><div class="modal"><h2>¿Estás seguro?</h2><p style="margin:20px 0">'+texto+'</p>'+
    '<div class="acciones"><button class="peligro" id="modal-cancelar">Cancelar</button>'+
    '<button id="modal-aceptar">'+textoBoton+'</button></div></div></div>';
  document.getElementById('modal-cancelar').onclick=function(){zona.innerHTML='';};
  document.getElementById('modal-aceptar').onclick=function(){zona.innerHTML='';alAceptar();};
}

function pedirJSON(url, opciones){
  return fetch(url, opciones).then(function(res){
    return res.json().then(function(cuerpo){
      if(!res.ok) throw new Error(cuerpo.error||'Error desconocido');
      return cuerpo;
    });
  });
}

/* ---- Productos y ventas ---- */

function cargarProductos(){
  pedirJSON('/ui/productos').then(function(productos){
    var filas=productos.map(function(p){return '<tr><td>'+p.id+'</td><td>'+p.nombre+'</td><td>$'+p.precio_venta+'</td></tr>';}).join('');
    document.getElementById('tabla-productos').innerHTML=
      '<table><thead><tr><th>ID</th><th>Nombre</th><th>Precio</th></tr></thead><tbody>'+filas+'</tbody></table>';
    document.getElementById('grid-productos').innerHTML=productos.map(function(p){
      return '<button onclick="agregarAlCarrito('+p.id+')">'+p.nombre+'<br>$'+p.precio_venta+'</button>';
    }).join('');
  }).catch(function(err){aviso('error', err.message);});
}

function pintarCarrito(car){
  var caja=document.getElementById('carrito');
  if(!car.lineas||car.lineas.length===0){
    caja.innerHTML='<p>No hay productos seleccionados.</p>';
  }else{
    var filas=car.lineas.map(function(l){
      return '<tr><td>'+l.producto.nombre+'</td><td>'+l.cantidad+'</td><td>$'+(l.producto.precio_venta*l.cantidad)+'</td>'+
        '<td><button class="peligro" onclick="quitarDelCarrito('+l.producto.id+')">❌</button></td></tr>';
    }).join('');
    caja.innerHTML='<table><thead><tr><th>Producto</th><th>Cant.</th><th>Precio</th><th></th></tr></thead><tbody>'+filas+'</tbody></table>';
  }
  document.getElementById('total-carrito').textContent='Total: $'+car.total;
}

function cargarCarrito(){
  pedirJSON('/ui/carrito').then(pintarCarrito).catch(function(err){aviso('error', err.message);});
}

function agregarAlCarrito(id){
  pedirJSON('/ui/carrito/agregar',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({id_producto:id})})
    .then(pintarCarrito).catch(function(err){aviso('error', err.message);});
}

function quitarDelCarrito(id){
  pedirJSON('/ui/carrito/quitar',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({id_producto:id})})
    .then(pintarCarrito).catch(function(err){aviso('error', err.message);});
}

function confirmarVenta(){
  pedirJSON('/ui/ventas/confirmar',{method:'POST',headers:{'Content-Type':'application/json'},body:'{}'})
    .then(function(r){aviso('ok','✅ '+r.mensaje);pintarCarrito({lineas:[],total:0});})
    .catch(function(err){aviso('error','❌ '+err.message);});
}

/* ---- Turnos ---- */

function abrirTurno(){
  var msg=document.getElementById('abrir-msg');
  msg.className='msg';
  pedirJSON('/ui/turnos/abrir',{method:'POST',headers:{'Content-Type':'application/json'},
    body:JSON.stringify({nombre:document.getElementById('abrir-nombre').value,fondo:document.getElementById('abrir-fondo').value})})
    .then(function(r){msg.classList.add('ok');msg.textContent='✅ '+r.mensaje;cargarTurnos();})
    .catch(function(err){msg.classList.add('error');msg.textContent='⚠️ '+err.message;});
}

function tarjetaTurno(t){
  var estado=t.hora_cierre?'<span class="estado cerrado">🔒 Cerrado</span>':'<span class="estado abierto">🟢 Abierto</span>';
  return '<div class="tarjeta"><h3>Turno #'+t.id_turno+' '+estado+'</h3>'+
    '<p><strong>👤 Responsable:</strong> '+t.usuario_responsable+'</p>'+
    '<p><strong>💰 Fondo Inicial:</strong> $'+t.fondo_inicial+'</p>'+
    '<p><strong>🕓 Apertura:</strong> '+fechaLocal(t.hora_apertura)+'</p>'+
    '<p><strong>🛑 Cierre:</strong> '+(t.hora_cierre?fechaLocal(t.hora_cierre):'-')+'</p></div>';
}

function fechaLocal(iso){
  if(!iso) return 'N/A';
  try{return new Date(iso).toLocaleString('es-CL',{hour12:false});}catch(e){return 'Error de formato';}
}

function cargarTurnos(){
  pedirJSON('/ui/turnos').then(function(turnos){
    var todos=document.getElementById('turnos-todos');
    todos.innerHTML=turnos.length?turnos.map(tarjetaTurno).join(''):'<p>No hay registros de turnos para mostrar en pantalla.</p>';
    var abiertos=turnos.filter(function(t){return !t.hora_cierre;});
    var caja=document.getElementById('turnos-abiertos');
    caja.innerHTML=abiertos.length?abiertos.map(function(t){
      return '<div class="tarjeta"><p><strong>👤 Responsable:</strong> '+t.usuario_responsable+'</p>'+
        '<p><strong>🕓 Apertura:</strong> '+fechaLocal(t.hora_apertura)+'</p>'+
        '<button onclick="pedirCierreTurno('+t.id_turno+',\''+t.usuario_responsable+'\')">🔒 Cerrar Turno</button></div>';
    }).join(''):'<p>No hay turnos abiertos actualmente.</p>';
  }).catch(function(err){aviso('error','Error cargando turnos: '+err.message);});
}

function limpiarPantallaTurnos(){
  document.getElementById('turnos-todos').innerHTML='<p>No hay registros de turnos para mostrar en pantalla.</p>';
}

function pedirCierreTurno(id, usuario){
  modalConfirmar('Confirma que deseas cerrar el turno de <strong>'+usuario+'</strong>.','Sí, Cerrar Turno',function(){
    pedirJSON('/ui/turnos/cerrar',{method:'POST',headers:{'Content-Type':'application/json'},
      body:JSON.stringify({id_turno:id,usuario_cierre:usuario,confirmar:true})})
      .then(function(r){aviso('ok','✅ '+r.mensaje);cargarTurnos();cargarTurnosActivos();})
      .catch(function(err){aviso('error','❌ '+err.message);});
  });
}

/* ---- Administración ---- */

function cargarTurnosActivos(){
  pedirJSON('/ui/turnos?estado=abiertos').then(function(turnos){
    var caja=document.getElementById('turnos-activos');
    caja.innerHTML=turnos.length?turnos.map(function(t){
      return '<div class="tarjeta"><h3>Turno Activo #'+t.id_turno+'</h3>'+
        '<p><strong>👤 Empleado:</strong> '+t.usuario_responsable+'</p>'+
        '<p><strong>💰 Fondo Inicial:</strong> $'+t.fondo_inicial+'</p>'+
        '<p><strong>🕰️ Hora de Apertura:</strong> '+fechaLocal(t.hora_apertura)+'</p>'+
        '<button class="peligro" onclick="pedirBorradoTurno('+t.id_turno+',\''+t.usuario_responsable+'\')">🗑️ Borrar Turno</button></div>';
    }).join(''):'<p>No hay turnos activos en este momento. ✅</p>';
  }).catch(function(err){aviso('error','Error al cargar la lista de turnos.');});
}

function pedirBorradoTurno(id, usuario){
  modalConfirmar('¿Estás seguro de <strong>ELIMINAR PERMANENTEMENTE</strong> el Turno #'+id+' de '+usuario+'?','Sí, Eliminar',function(){
    pedirJSON('/ui/turnos/'+id+'?confirmar=true',{method:'DELETE'})
      .then(function(r){aviso('ok','🗑️ '+r.mensaje);cargarTurnosActivos();cargarTurnos();})
      .catch(function(err){aviso('error','❌ Error al eliminar turno: '+err.message);});
  });
}

function cargarPagos(){
  pedirJSON('/ui/pagos/resumen').then(function(r){
    pagosCache=r.pagos||[];
    document.getElementById('total-pagos').textContent='$'+r.total.toFixed(2);
    pintarPagos();
  }).catch(function(err){aviso('error','Error cargando pagos: '+err.message);});
}

function pintarPagos(){
  var caja=document.getElementById('tabla-pagos');
  var btn=document.getElementById('btn-detalle');
  if(pagosCache.length===0){
    caja.innerHTML='<p style="margin-top:10px;font-weight:bold">Aún no hay pagos registrados. 😥</p>';
    btn.classList.add('oculto');
    return;
  }
  btn.classList.remove('oculto');
  btn.textContent=detalleVisible?'Ocultar Detalle ⬆️':'Mostrar Detalle ⬇️';
  if(!detalleVisible){caja.innerHTML='';return;}
  var filas=pagosCache.map(function(p,i){
    var prods=(p.productos||[]).map(function(pr){
      return '<div>'+pr.nombre+' x'+pr.cantidad+' ($'+pr.precio_unitario+')</div>';
    }).join('');
    return '<tr><td>'+(i+1)+'</td><td>'+(p.metodo_pago||'N/A')+'</td><td>'+prods+'</td><td>$'+(p.total?p.total.toFixed(2):'0.00')+'</td></tr>';
  }).join('');
  caja.innerHTML='<table><thead><tr><th>ID Venta</th><th>Método</th><th>Productos Vendidos</th><th>Total Venta</th></tr></thead><tbody>'+filas+'</tbody></table>';
}

function alternarDetalle(){detalleVisible=!detalleVisible;pintarPagos();}

/* ---- Cierre del día ---- */

function pedirCierreDia(){
  modalConfirmar('⚠️ <strong>¿Estás seguro de cerrar el día?</strong> Esto generará el PDF y <strong>CERRARÁ TODOS LOS TURNOS ACTIVOS</strong> para resetear los contadores diarios.','Aceptar y Cerrar Turnos',cerrarDia);
}

function cerrarDia(){
  var btn=document.getElementById('btn-cerrar-dia');
  btn.disabled=true;btn.textContent='Generando Informe...';
  fetch('/ui/cerrar-dia',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({confirmar:true})})
    .then(function(res){
      if(!res.ok) return res.json().then(function(c){throw new Error(c.error||'Error desconocido');});
      var estado=res.headers.get('X-Cierre-Estado');
      var mensaje=res.headers.get('X-Cierre-Mensaje')||'';
      var disp=res.headers.get('Content-Disposition')||'';
      var nombre=(disp.split('filename=')[1]||'informe_caffeflux.pdf').replace(/"/g,'');
      return res.blob().then(function(blob){
        var a=document.createElement('a');
        a.href=URL.createObjectURL(blob);
        a.download=nombre;
        document.body.appendChild(a);a.click();a.remove();
        aviso(estado==='ok'?'ok':'error',(estado==='ok'?'✅ ':'⚠️ ')+mensaje,8000);
        cargarTurnosActivos();cargarPagos();
      });
    })
    .catch(function(err){aviso('error','Error al generar el informe: '+err.message,8000);})
    .then(function(){btn.disabled=false;btn.textContent='🧾 Generar Informe';});
}
</script>
</body>
</html>
`
